// Package assets resolves fonts for scenes and reloads them when the files
// on disk change.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/younwookim/gametemplate/internal/infrastructure/log"
)

// ErrNotFound is returned when a font is neither in the resources directory
// nor one of the built-in faces
var ErrNotFound = errors.New("asset not found")

const dpi = 72

var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
	"gomono":    gomono.TTF,
}

type fontEntry struct {
	font    *opentype.Font
	path    string
	modTime time.Time
	builtin bool
}

type faceKey struct {
	name string
	size float64
}

// Store loads fonts from a resources filesystem and caches parsed fonts and
// sized faces. A nil filesystem serves built-in fonts only.
type Store struct {
	fsys  fs.FS
	fonts map[string]*fontEntry
	faces map[faceKey]text.Face
}

// NewStore creates a store rooted at dir. A missing dir is not an error;
// only built-in fonts will be available.
func NewStore(dir string) *Store {
	if dir == "" {
		return NewFSStore(nil)
	}
	if _, err := os.Stat(dir); err != nil {
		log.Warn("Resources dir %s not available, using built-in fonts only: %v", dir, err)
		return NewFSStore(nil)
	}
	log.Info("Setting up resource path: %s", dir)
	return NewFSStore(os.DirFS(dir))
}

// NewFSStore creates a store reading from fsys
func NewFSStore(fsys fs.FS) *Store {
	return &Store{
		fsys:  fsys,
		fonts: make(map[string]*fontEntry),
		faces: make(map[faceKey]text.Face),
	}
}

// Face returns the named font at the given size.
// Files under fonts/<name>.ttf take precedence over built-ins.
func (s *Store) Face(name string, size float64) (text.Face, error) {
	key := faceKey{name: name, size: size}
	if f, ok := s.faces[key]; ok {
		return f, nil
	}

	entry, err := s.loadFont(name)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(entry.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face %s@%g: %w", name, size, err)
	}

	f := text.NewGoXFace(face)
	s.faces[key] = f
	return f, nil
}

func (s *Store) loadFont(name string) (*fontEntry, error) {
	if entry, ok := s.fonts[name]; ok {
		return entry, nil
	}

	p := path.Join("fonts", name+".ttf")
	entry := &fontEntry{path: p}

	var data []byte
	if s.fsys != nil {
		raw, err := fs.ReadFile(s.fsys, p)
		switch {
		case err == nil:
			data = raw
			if fi, err := fs.Stat(s.fsys, p); err == nil {
				entry.modTime = fi.ModTime()
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
	}

	if data == nil {
		builtin, ok := builtinFonts[name]
		if !ok {
			return nil, fmt.Errorf("font %q: %w", name, ErrNotFound)
		}
		data = builtin
		entry.builtin = true
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", name, err)
	}
	entry.font = f
	s.fonts[name] = entry

	log.Debug("Loaded font %s (builtin: %t)", name, entry.builtin)
	return entry, nil
}

// Sync drops fonts whose files changed or disappeared since they were loaded,
// so the next Face call reloads them. It returns how many fonts were dropped.
func (s *Store) Sync() int {
	if s.fsys == nil {
		return 0
	}

	dropped := 0
	for name, entry := range s.fonts {
		if entry.builtin {
			continue
		}
		fi, err := fs.Stat(s.fsys, entry.path)
		if err == nil && fi.ModTime().Equal(entry.modTime) {
			continue
		}
		s.invalidate(name)
		dropped++
		log.Info("Font %s changed on disk, reloading", name)
	}
	return dropped
}

func (s *Store) invalidate(name string) {
	delete(s.fonts, name)
	for key := range s.faces {
		if key.name == name {
			delete(s.faces, key)
		}
	}
}
