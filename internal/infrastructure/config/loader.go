package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	App    *AppConfig
	Input  *InputConfig
	Scenes *ScenesConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) load(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadApp loads app.json
func (l *Loader) LoadApp() (*AppConfig, error) {
	var cfg AppConfig
	if err := l.load("app.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadInput loads input.json
func (l *Loader) LoadInput() (*InputConfig, error) {
	var cfg InputConfig
	if err := l.load("input.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadScenes loads scenes.json
func (l *Loader) LoadScenes() (*ScenesConfig, error) {
	var cfg ScenesConfig
	if err := l.load("scenes.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads and validates all configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	app, err := l.LoadApp()
	if err != nil {
		return nil, err
	}

	in, err := l.LoadInput()
	if err != nil {
		return nil, err
	}

	scenes, err := l.LoadScenes()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		App:    app,
		Input:  in,
		Scenes: scenes,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}
	return cfg, nil
}

// Validate checks the values the game cannot start without
func (c *GameConfig) Validate() error {
	var errs []error

	d := c.App.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: screen size must be positive, got %dx%d", d.ScreenWidth, d.ScreenHeight))
	}
	if d.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display: framerate must be positive, got %d", d.Framerate))
	}
	if _, err := ParseHexColor(d.Background); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if len(c.Input.Bindings) == 0 {
		errs = append(errs, errors.New("input: no bindings"))
	}
	if r := c.Input.Repeat; r.Delay < 0 || r.Interval < 0 {
		errs = append(errs, fmt.Errorf("input: repeat delay and interval must not be negative, got %d/%d", r.Delay, r.Interval))
	}

	s := c.Scenes
	if len(s.Title.Options) == 0 {
		errs = append(errs, errors.New("scenes: title needs at least one option"))
	}
	for i, opt := range s.Title.Options {
		if opt.Label == "" {
			errs = append(errs, fmt.Errorf("scenes: title option %d has no label", i))
		}
		if opt.Scene != "level" && opt.Scene != "menu" {
			errs = append(errs, fmt.Errorf("scenes: title option %q opens unknown scene %q", opt.Label, opt.Scene))
		}
	}
	if s.UserInput.MaxChars <= 0 {
		errs = append(errs, fmt.Errorf("scenes: userInput.maxChars must be positive, got %d", s.UserInput.MaxChars))
	}
	if s.Font.Name == "" {
		errs = append(errs, errors.New("scenes: font.name is empty"))
	}

	return errors.Join(errs...)
}
