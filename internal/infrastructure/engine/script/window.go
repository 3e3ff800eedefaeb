// Package script runs page scripts in an embedded JavaScript engine. Each
// window owns one runtime driven by a single goroutine, so a blocking dialog
// suspends that window only.
package script

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/grafana/sobek"
	"github.com/rs/zerolog"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

// ErrWindowClosed is returned when a job is submitted to a closed window.
var ErrWindowClosed = errors.New("window closed")

type job struct {
	ctx    context.Context
	run    func(ctx context.Context, vm *sobek.Runtime) (any, error)
	result chan jobResult
}

type jobResult struct {
	value any
	err   error
}

// Window is a scriptable browsing context.
type Window struct {
	id       entity.WindowID
	notifier port.DialogNotifier
	log      zerolog.Logger

	jobs      chan job
	stop      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

var _ port.BrowsingContext = (*Window)(nil)

// NewWindow starts the runtime goroutine for a window. Dialogs raised by
// scripts are routed to notifier.
func NewWindow(ctx context.Context, id entity.WindowID, notifier port.DialogNotifier) *Window {
	w := &Window{
		id:       id,
		notifier: notifier,
		log:      logging.FromContext(ctx).With().Str("component", "script-engine").Str("window_id", string(id)).Logger(),
		jobs:     make(chan job),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *Window) ID() entity.WindowID {
	return w.id
}

func (w *Window) loop() {
	defer close(w.stopped)

	vm := sobek.New()
	vm.SetFieldNameMapper(sobek.UncapFieldNameMapper())

	var current context.Context = context.Background()
	w.install(vm, func() context.Context { return current })

	for {
		select {
		case <-w.stop:
			return
		case j := <-w.jobs:
			current = j.ctx
			value, err := w.runJob(j, vm)
			current = context.Background()
			j.result <- jobResult{value: value, err: err}
		}
	}
}

func (w *Window) runJob(j job, vm *sobek.Runtime) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script panic: %v", r)
		}
	}()
	return j.run(j.ctx, vm)
}

// submit hands fn to the runtime goroutine and waits for it. A dialog raised
// by fn keeps submit blocked until the dialog is released.
func (w *Window) submit(ctx context.Context, fn func(ctx context.Context, vm *sobek.Runtime) (any, error)) (any, error) {
	j := job{ctx: ctx, run: fn, result: make(chan jobResult, 1)}

	select {
	case w.jobs <- j:
	case <-w.stop:
		return nil, ErrWindowClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	res := <-j.result
	return res.value, res.err
}

// Eval runs src and returns the exported completion value.
func (w *Window) Eval(ctx context.Context, src string) (any, error) {
	return w.submit(ctx, func(_ context.Context, vm *sobek.Runtime) (any, error) {
		v, err := vm.RunString(src)
		if err != nil {
			return nil, err
		}
		return export(v), nil
	})
}

// Unload runs the page's beforeunload handler. It reports whether navigation
// may proceed; a handler asking to stay raises a beforeunload dialog.
func (w *Window) Unload(ctx context.Context) (bool, error) {
	v, err := w.submit(ctx, func(ctx context.Context, vm *sobek.Runtime) (any, error) {
		return w.beforeUnload(ctx, vm)
	})
	if err != nil {
		return false, err
	}
	proceed, _ := v.(bool)
	return proceed, nil
}

func (w *Window) beforeUnload(ctx context.Context, vm *sobek.Runtime) (bool, error) {
	handler, ok := sobek.AssertFunction(vm.GlobalObject().Get("onbeforeunload"))
	if !ok {
		return true, nil
	}
	ret, err := handler(sobek.Undefined())
	if err != nil {
		return false, err
	}
	if isNullish(ret) || ret.String() == "" {
		return true, nil
	}
	out := w.notifier.Notify(ctx, w.id, entity.DialogBeforeUnload, ret.String(), "")
	return out.Accepted, nil
}

// Close runs beforeunload and stops the runtime. Safe to call more than once.
func (w *Window) Close(ctx context.Context) error {
	var err error
	w.closeOnce.Do(func() {
		if _, uerr := w.Unload(ctx); uerr != nil && !errors.Is(uerr, ErrWindowClosed) {
			w.log.Warn().Err(uerr).Msg("beforeunload handler failed")
		}
		close(w.stop)
		select {
		case <-w.stopped:
		case <-ctx.Done():
			err = ctx.Err()
		}
		w.log.Debug().Msg("window closed")
	})
	return err
}

func (w *Window) install(vm *sobek.Runtime, current func() context.Context) {
	global := vm.GlobalObject()
	_ = global.Set("window", global)

	_ = global.Set("alert", func(call sobek.FunctionCall) sobek.Value {
		w.notifier.Notify(current(), w.id, entity.DialogAlert, argString(call, 0), "")
		return sobek.Undefined()
	})

	_ = global.Set("confirm", func(call sobek.FunctionCall) sobek.Value {
		out := w.notifier.Notify(current(), w.id, entity.DialogConfirm, argString(call, 0), "")
		return vm.ToValue(out.Accepted)
	})

	_ = global.Set("prompt", func(call sobek.FunctionCall) sobek.Value {
		out := w.notifier.Notify(current(), w.id, entity.DialogPrompt, argString(call, 0), argString(call, 1))
		if !out.Accepted || !out.HasText {
			return sobek.Null()
		}
		return vm.ToValue(out.Text)
	})

	console := vm.NewObject()
	_ = console.Set("log", func(call sobek.FunctionCall) sobek.Value {
		args := make([]string, 0, len(call.Arguments))
		for _, a := range call.Arguments {
			args = append(args, a.String())
		}
		w.log.Info().Strs("args", args).Msg("console.log")
		return sobek.Undefined()
	})
	_ = global.Set("console", console)
}

func argString(call sobek.FunctionCall, i int) string {
	v := call.Argument(i)
	if isNullish(v) {
		return ""
	}
	return v.String()
}

func isNullish(v sobek.Value) bool {
	return v == nil || sobek.IsUndefined(v) || sobek.IsNull(v)
}

func export(v sobek.Value) any {
	if isNullish(v) {
		return nil
	}
	return v.Export()
}
