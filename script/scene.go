package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	rt "github.com/arnodel/golua/runtime"
	"github.com/gogpu/tin"
)

// Option configures a LuaScene.
type Option func(*LuaScene)

// WithConfig sets the runtime limits.
func WithConfig(cfg Config) Option {
	return func(s *LuaScene) { s.cfg = cfg }
}

// LuaScene is a tin.Scene whose callbacks are Lua functions. Errors
// raised by Lua are logged and kept; the failing callback is skipped and
// the scene continues with the next frame.
type LuaScene struct {
	dc   *tin.Context
	cfg  Config
	name string
	path string

	mu     sync.Mutex
	vm     *vm
	images map[string]*tin.Image
	err    error
}

var _ tin.Scene = (*LuaScene)(nil)

// Load reads the scene file at path. Drawing functions enqueue on dc; a
// nil dc means the process-wide context.
func Load(path string, dc *tin.Context, opts ...Option) (*LuaScene, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	s := newScene(filepath.Base(path), dc, opts)
	s.path = path
	if err := s.load(src); err != nil {
		return nil, err
	}
	return s, nil
}

// New compiles the scene source src. name is used in error messages.
func New(name string, src []byte, dc *tin.Context, opts ...Option) (*LuaScene, error) {
	s := newScene(name, dc, opts)
	if err := s.load(src); err != nil {
		return nil, err
	}
	return s, nil
}

func newScene(name string, dc *tin.Context, opts []Option) *LuaScene {
	if dc == nil {
		dc = tin.Default()
	}
	s := &LuaScene{
		dc:     dc,
		cfg:    DefaultConfig(),
		name:   name,
		images: make(map[string]*tin.Image),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load runs src in a fresh runtime and swaps it in on success.
func (s *LuaScene) load(src []byte) error {
	v := newVM(s.cfg)
	s.register(v)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := v.run(s.name, src); err != nil {
		v.close()
		return err
	}
	if s.vm != nil {
		s.vm.close()
	}
	s.vm = v
	return nil
}

// Reload re-reads the scene file and runs its setup again. On failure
// the previous version keeps running.
func (s *LuaScene) Reload() error {
	if s.path == "" {
		return fmt.Errorf("script: %s was not loaded from a file", s.name)
	}
	src, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	if err := s.load(src); err != nil {
		return err
	}
	tin.Logger().Info("script: reloaded", "path", s.path)
	s.Setup()
	return nil
}

// Setup calls setup().
func (s *LuaScene) Setup() {
	s.invoke("setup")
}

// Update calls update().
func (s *LuaScene) Update() {
	s.invoke("update")
}

// OnEvent calls on_event(kind, x, y, key) with kind and key as names,
// for example on_event("MouseDown", 10, 20, "Unknown").
func (s *LuaScene) OnEvent(e tin.Event) {
	s.invoke("on_event",
		rt.StringValue(e.Kind.String()),
		rt.FloatValue(e.Point.X),
		rt.FloatValue(e.Point.Y),
		rt.StringValue(e.Key.String()),
	)
}

func (s *LuaScene) invoke(name string, args ...rt.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vm == nil {
		return
	}
	if err := s.vm.callGlobal(name, args...); err != nil {
		tin.Logger().Warn("script: callback failed", "scene", s.name, "func", name, "error", err)
		s.err = err
	}
}

// Err returns the most recent callback error.
func (s *LuaScene) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close releases the runtime.
func (s *LuaScene) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vm != nil {
		s.vm.close()
		s.vm = nil
	}
	return nil
}

// loadImage is called from Lua with s.mu held.
func (s *LuaScene) loadImage(path string) (*tin.Image, error) {
	if !filepath.IsAbs(path) && s.path != "" {
		path = filepath.Join(filepath.Dir(s.path), path)
	}
	if img, ok := s.images[path]; ok {
		return img, nil
	}
	img, err := tin.LoadImage(path)
	if err != nil {
		return nil, err
	}
	s.images[path] = img
	return img, nil
}
