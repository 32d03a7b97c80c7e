package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for weapon flavour hooks.
// Single-goroutine access only (game loop). Every hook is optional; a missing
// or failing hook falls back to the built-in behaviour.
type Engine struct {
	vm  *lua.LState
	dir string
	log *zap.Logger
}

// scriptDirs are loaded in order below the scripts root.
var scriptDirs = []string{"", "weapon"}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory. An empty dir yields an engine with no hooks.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm, err := newVM(scriptsDir, log)
	if err != nil {
		return nil, err
	}
	return &Engine{vm: vm, dir: scriptsDir, log: log}, nil
}

func newVM(scriptsDir string, log *zap.Logger) (*lua.LState, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	if scriptsDir == "" {
		return vm, nil
	}
	for _, sub := range scriptDirs {
		p := filepath.Join(scriptsDir, sub)
		if err := loadDir(vm, p, log); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", p, err)
		}
	}
	return vm, nil
}

// loadDir loads all .lua files in a directory.
func loadDir(vm *lua.LState, dir string, log *zap.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Reload rebuilds the VM from the scripts directory. The old VM stays in
// service when the new scripts fail to load.
func (e *Engine) Reload() error {
	vm, err := newVM(e.dir, e.log)
	if err != nil {
		return err
	}
	e.vm.Close()
	e.vm = vm
	return nil
}

// Has reports whether a global Lua function with the given name exists.
func (e *Engine) Has(name string) bool {
	_, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	return ok
}

// PickInsult calls pick_insult(count, roll) and returns a 0-based index in
// [0, count). The Lua hook returns a 1-based index. roll is uniform in [0, 1).
func (e *Engine) PickInsult(count int, roll float64) int {
	if count <= 0 {
		return 0
	}
	fallback := int(roll * float64(count))
	if fallback >= count {
		fallback = count - 1
	}
	if !e.Has("pick_insult") {
		return fallback
	}
	ret, err := e.call("pick_insult", lua.LNumber(count), lua.LNumber(roll))
	if err != nil {
		return fallback
	}
	n, ok := ret.(lua.LNumber)
	idx := int(n) - 1
	if !ok || idx < 0 || idx >= count {
		e.log.Warn("lua pick_insult returned out-of-range index",
			zap.String("value", ret.String()), zap.Int("count", count))
		return fallback
	}
	return idx
}

// FormatInsult calls format_insult(text) and returns the shouted line.
func (e *Engine) FormatInsult(text string) string {
	if !e.Has("format_insult") {
		return text
	}
	ret, err := e.call("format_insult", lua.LString(text))
	if err != nil {
		return text
	}
	s, ok := ret.(lua.LString)
	if !ok || s == "" {
		return text
	}
	return string(s)
}

// call invokes a global function with one return value.
func (e *Engine) call(name string, args ...lua.LValue) (lua.LValue, error) {
	if err := e.vm.CallByParam(lua.P{
		Fn:      e.vm.GetGlobal(name),
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		e.log.Error("lua call error", zap.String("func", name), zap.Error(err))
		return lua.LNil, err
	}
	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return result, nil
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
