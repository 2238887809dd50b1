// Package scripting runs the enemy behavior and victory message rules as Lua
// scripts.
package scripting

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/younwookim/stickman/internal/domain/entity"
)

//go:embed scripts/*.lua
var builtin embed.FS

// ErrMissingFunction is returned when a required Lua global is not defined
var ErrMissingFunction = errors.New("lua function not found")

// Engine wraps a single gopher-lua VM. Calls are serialized with a mutex, so
// it can serve the worker goroutines of a match.
type Engine struct {
	mu  sync.Mutex
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every .lua file from scriptsDir.
// An empty scriptsDir loads the built-in rules.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	var fsys fs.FS
	if scriptsDir == "" {
		sub, err := fs.Sub(builtin, "scripts")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(scriptsDir)
	}
	return NewEngineFS(fsys, log)
}

// NewEngineFS creates a Lua engine from the .lua files at the root of fsys
func NewEngineFS(fsys fs.FS, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadFS(fsys); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

// loadFS loads all .lua files in the root of fsys
func (e *Engine) loadFS(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		src, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return err
		}
		if err := e.vm.DoString(string(src)); err != nil {
			return fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		e.log.Debug("loaded lua script", zap.String("file", entry.Name()))
	}
	return nil
}

// Classify calls the Lua classify_behavior function
func (e *Engine) Classify(ctx context.Context, q entity.BehaviorQuery) (entity.BehaviorVerdict, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn := e.vm.GetGlobal("classify_behavior")
	if fn == lua.LNil {
		return entity.BehaviorVerdict{}, fmt.Errorf("classify_behavior: %w", ErrMissingFunction)
	}

	// Build context table
	t := e.vm.NewTable()
	t.RawSetString("proximity", lua.LString(q.Proximity))
	t.RawSetString("action", lua.LString(q.PlayerAction))
	t.RawSetString("health", lua.LNumber(q.EnemyHealth))

	result, err := e.call(ctx, fn, t)
	if err != nil {
		return entity.BehaviorVerdict{}, fmt.Errorf("classify_behavior: %w", err)
	}

	rt, ok := result.(*lua.LTable)
	if !ok {
		return entity.BehaviorVerdict{}, fmt.Errorf("classify_behavior returned %s, want table", result.Type())
	}
	return entity.BehaviorVerdict{
		Behavior:  lua.LVAsString(rt.RawGetString("behavior")),
		Reasoning: lua.LVAsString(rt.RawGetString("reasoning")),
	}, nil
}

// VictoryMessage calls the Lua victory_message function
func (e *Engine) VictoryMessage(ctx context.Context, playerName string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn := e.vm.GetGlobal("victory_message")
	if fn == lua.LNil {
		return "", fmt.Errorf("victory_message: %w", ErrMissingFunction)
	}

	result, err := e.call(ctx, fn, lua.LString(playerName))
	if err != nil {
		return "", fmt.Errorf("victory_message: %w", err)
	}
	msg, ok := result.(lua.LString)
	if !ok {
		return "", fmt.Errorf("victory_message returned %s, want string", result.Type())
	}
	return string(msg), nil
}

// call runs fn with one return value under ctx. Caller holds e.mu.
func (e *Engine) call(ctx context.Context, fn lua.LValue, args ...lua.LValue) (lua.LValue, error) {
	e.vm.SetContext(ctx)
	defer e.vm.RemoveContext()

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		return lua.LNil, err
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return result, nil
}

// Close releases the VM
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vm.Close()
}
