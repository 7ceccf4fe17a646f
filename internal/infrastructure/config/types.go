package config

// AppConfig is the root config for app.json
type AppConfig struct {
	Display DisplayConfig `json:"display"`
	Runtime RuntimeConfig `json:"runtime"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	// Resizable makes the logical screen follow the window size
	Resizable  bool   `json:"resizable"`
	Background string `json:"background"` // "#rrggbb"
	ShowFPS    bool   `json:"showFPS"`
}

type RuntimeConfig struct {
	LogLevel     string `json:"logLevel"`
	ResourcesDir string `json:"resourcesDir"`
	// AssetSyncTicks is how often (in ticks) the asset store checks for changed files
	AssetSyncTicks int `json:"assetSyncTicks"`
}

// InputConfig is the root config for input.json
type InputConfig struct {
	Bindings []BindingConfig `json:"bindings"`
	Repeat   RepeatConfig    `json:"repeat"`
}

// BindingConfig binds one key to either a button or an axis direction
type BindingConfig struct {
	Key    string  `json:"key"`
	Button string  `json:"button,omitempty"`
	Axis   string  `json:"axis,omitempty"`
	Value  float64 `json:"value,omitempty"`
}

// RepeatConfig configures key repeat for held keys (in ticks)
type RepeatConfig struct {
	Delay    int `json:"delay"`
	Interval int `json:"interval"`
}

// ScenesConfig is the root config for scenes.json
type ScenesConfig struct {
	Initial   string          `json:"initial"`
	Font      FontConfig      `json:"font"`
	Title     TitleConfig     `json:"title"`
	Menu      MenuConfig      `json:"menu"`
	UserInput UserInputConfig `json:"userInput"`
	Level     LevelConfig     `json:"level"`
}

type FontConfig struct {
	Name        string  `json:"name"`
	HeadingSize float64 `json:"headingSize"`
	BodySize    float64 `json:"bodySize"`
	PromptSize  float64 `json:"promptSize"`
	InputSize   float64 `json:"inputSize"`
}

type TitleConfig struct {
	Options []TitleOption `json:"options"`
}

// TitleOption is one title entry and the scene it opens
type TitleOption struct {
	Label string `json:"label"`
	Scene string `json:"scene"` // "level" or "menu"
}

type MenuConfig struct {
	Heading string `json:"heading"`
	Hint    string `json:"hint"`
}

type UserInputConfig struct {
	Prompt   string `json:"prompt"`
	MaxChars int    `json:"maxChars"`
}

type LevelConfig struct {
	Speed        float64 `json:"speed"` // pixels per tick at full axis deflection
	PlayerWidth  float64 `json:"playerWidth"`
	PlayerHeight float64 `json:"playerHeight"`
	DefaultName  string  `json:"defaultName"`
}
