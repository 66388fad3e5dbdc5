package text

import (
	"fmt"
	"sync"

	"github.com/gogpu/tin"
)

// maxLoadedFaces bounds the faces loaded from files by Lookup.
const maxLoadedFaces = 32

var (
	namedMu sync.RWMutex
	named   = make(map[string]*Face)

	loaded = NewCache(maxLoadedFaces, func(path string, f *Face) {
		tin.Logger().Debug("text: font evicted", "path", path)
		_ = f.Close()
	})
)

// Register makes f available to Lookup under name. Registering a nil face
// removes the name.
func Register(name string, f *Face) {
	namedMu.Lock()
	defer namedMu.Unlock()
	if f == nil {
		delete(named, name)
		return
	}
	named[name] = f
}

// Lookup resolves font to a face. An empty name is the default face, a
// registered name is that face, and anything else is loaded as a font
// file path and cached.
func Lookup(font tin.Font) (*Face, error) {
	if font.Name == "" {
		return DefaultFace(), nil
	}

	namedMu.RLock()
	f, ok := named[font.Name]
	namedMu.RUnlock()
	if ok {
		return f, nil
	}

	f, err := loaded.GetOrCreate(font.Name, func() (*Face, error) {
		tin.Logger().Debug("text: loading font", "path", font.Name)
		return LoadFace(font.Name)
	})
	if err != nil {
		return nil, fmt.Errorf("text: lookup %q: %w", font.Name, err)
	}
	return f, nil
}

// LookupOrDefault is Lookup falling back to the default face on error.
func LookupOrDefault(font tin.Font) *Face {
	f, err := Lookup(font)
	if err != nil {
		tin.Logger().Warn("text: using default face", "font", font.Name, "error", err)
		return DefaultFace()
	}
	return f
}
