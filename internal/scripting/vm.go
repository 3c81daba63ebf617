package scripting

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dop251/goja"
)

const (
	scriptInitTimeout = 2 * time.Second
	scriptCallTimeout = 1 * time.Second
)

// VM wraps a goja runtime with sandbox restrictions and the strategy
// helpers injected. It is used from a single goroutine.
type VM struct {
	runtime *goja.Runtime
	log     *slog.Logger

	stopRequested bool
}

// NewVM creates a sandboxed runtime with log(), stop(), and console.log
// registered.
func NewVM(log *slog.Logger) *VM {
	vm := &VM{
		runtime: goja.New(),
		log:     log,
	}
	vm.injectGlobals()
	return vm
}

func (vm *VM) injectGlobals() {
	// log(...args) — forwards to the structured logger
	vm.runtime.Set("log", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		vm.log.Info("script: " + strings.Join(parts, " "))
		return goja.Undefined()
	})

	// console.log — alias for log
	console := vm.runtime.NewObject()
	console.Set("log", vm.runtime.Get("log"))
	vm.runtime.Set("console", console)

	// stop() — requests a cash-out before the next bet
	vm.runtime.Set("stop", func(call goja.FunctionCall) goja.Value {
		vm.stopRequested = true
		return goja.Undefined()
	})

	// Math is available in goja by default. Block escape hatches.
	vm.runtime.Set("require", goja.Undefined())
	vm.runtime.Set("fetch", goja.Undefined())
	vm.runtime.Set("XMLHttpRequest", goja.Undefined())
	vm.runtime.Set("eval", goja.Undefined())
	vm.runtime.Set("Function", goja.Undefined())
}

// Execute runs the strategy source once. The script must register dobet().
func (vm *VM) Execute(source string) error {
	return vm.runWithTimeout(scriptInitTimeout, func() error {
		if _, err := vm.runtime.RunString(source); err != nil {
			return fmt.Errorf("script execution error: %w", err)
		}
		return nil
	})
}

// CallDobet calls the user-defined dobet() function.
func (vm *VM) CallDobet() error {
	return vm.runWithTimeout(scriptCallTimeout, func() error {
		fn := vm.runtime.Get("dobet")
		if fn == nil || goja.IsUndefined(fn) || goja.IsNull(fn) {
			return fmt.Errorf("dobet() function is not defined")
		}

		callable, ok := goja.AssertFunction(fn)
		if !ok {
			return fmt.Errorf("dobet is not a function")
		}

		if _, err := callable(goja.Undefined()); err != nil {
			return fmt.Errorf("dobet() error: %w", err)
		}
		return nil
	})
}

// StopRequested reports whether the script called stop().
func (vm *VM) StopRequested() bool { return vm.stopRequested }

// Set assigns a global variable on the runtime.
func (vm *VM) Set(name string, value any) { vm.runtime.Set(name, value) }

// Get reads a global variable from the runtime.
func (vm *VM) Get(name string) goja.Value { return vm.runtime.Get(name) }

// runWithTimeout interrupts the runtime when fn exceeds the deadline.
func (vm *VM) runWithTimeout(timeout time.Duration, fn func() error) error {
	timer := time.AfterFunc(timeout, func() {
		vm.runtime.Interrupt("script timeout")
	})
	err := fn()
	timer.Stop()
	vm.runtime.ClearInterrupt()
	return err
}
