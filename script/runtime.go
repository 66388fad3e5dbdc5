// Package script runs tin scenes written in Lua.
//
// A scene file defines any of the global functions setup(), update() and
// on_event(kind, x, y, key). They call drawing functions such as rect,
// fill and translate, which enqueue draw calls on the scene's context:
//
//	function update()
//	  background(1)
//	  fill(0.2, 0.4, 0.8)
//	  ellipse(width() / 2, height() / 2, 80, 80)
//	end
//
// Every call into Lua runs under CPU and memory limits.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"
)

// ErrLimitExceeded is wrapped by errors from Lua code that ran out of
// its CPU or memory budget.
var ErrLimitExceeded = errors.New("script: resource limit exceeded")

// Config limits the Lua runtime.
type Config struct {
	// CPULimit caps the instructions of a single call. 0 means unlimited.
	CPULimit uint64
	// MemoryLimit caps the bytes allocated by a single call. 0 means
	// unlimited.
	MemoryLimit uint64
	// Stdout receives print output. Nil means os.Stdout.
	Stdout io.Writer
}

// DefaultConfig allows 10M instructions and 50 MB per call.
func DefaultConfig() Config {
	return Config{
		CPULimit:    10_000_000,
		MemoryLimit: 50 << 20,
		Stdout:      os.Stdout,
	}
}

// vm is one Lua runtime with the standard library loaded.
type vm struct {
	cfg     Config
	runtime *rt.Runtime
	cleanup func()
}

func newVM(cfg Config) *vm {
	out := cfg.Stdout
	if out == nil {
		out = os.Stdout
	}
	r := rt.New(out)
	return &vm{cfg: cfg, runtime: r, cleanup: lib.LoadAll(r)}
}

func (v *vm) close() {
	if v.cleanup != nil {
		v.cleanup()
		v.cleanup = nil
	}
}

func (v *vm) setFunction(name string, fn rt.GoFunctionFunc, nArgs int, hasEtc bool) {
	f := rt.NewGoFunction(fn, name, nArgs, hasEtc)
	rt.SolemnlyDeclareCompliance(rt.ComplyMemSafe|rt.ComplyCpuSafe, f)
	v.runtime.GlobalEnv().Set(rt.StringValue(name), rt.FunctionValue(f))
}

func (v *vm) global(name string) rt.Value {
	return v.runtime.GlobalEnv().Get(rt.StringValue(name))
}

// run compiles and executes a chunk.
func (v *vm) run(name string, src []byte) error {
	chunk, err := v.runtime.CompileAndLoadLuaChunk(name, src, rt.TableValue(v.runtime.GlobalEnv()))
	if err != nil {
		return fmt.Errorf("script: compile %s: %w", name, err)
	}
	_, err = v.call(name, rt.FunctionValue(chunk))
	return err
}

// callGlobal calls the global function name. A missing function is not
// an error.
func (v *vm) callGlobal(name string, args ...rt.Value) error {
	fn := v.global(name)
	if fn == rt.NilValue {
		return nil
	}
	_, err := v.call(name, fn, args...)
	return err
}

// call runs fn under the configured limits. The runtime panics when a
// hard limit is reached; the panic is returned as ErrLimitExceeded.
func (v *vm) call(name string, fn rt.Value, args ...rt.Value) (res rt.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = rt.NilValue, fmt.Errorf("%w: %s: %v", ErrLimitExceeded, name, r)
		}
	}()

	v.runtime.PushContext(rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    v.cfg.CPULimit,
			Memory: v.cfg.MemoryLimit,
		},
	})
	defer v.runtime.PopContext()

	res, err = rt.Call1(v.runtime.MainThread(), fn, args...)
	if err != nil {
		return rt.NilValue, fmt.Errorf("script: %s: %w", name, err)
	}
	return res, nil
}
