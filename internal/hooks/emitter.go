package hooks

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

const hookDispatchFailed = "HOOK_DISPATCH_FAILED"

// DispatcherEmitter delivers lifecycle events through the go-command
// dispatcher. Hosts subscribe a handler for the RecordEvent message type.
type DispatcherEmitter struct {
	logger interfaces.Logger
}

// EmitterOption configures the emitter at construction time.
type EmitterOption func(*DispatcherEmitter)

// WithLoggerProvider scopes emitter logging to the hooks namespace.
func WithLoggerProvider(provider interfaces.LoggerProvider) EmitterOption {
	return func(e *DispatcherEmitter) {
		e.logger = logging.HooksLogger(provider)
	}
}

// NewDispatcherEmitter constructs a go-command backed emitter.
func NewDispatcherEmitter(opts ...EmitterOption) *DispatcherEmitter {
	e := &DispatcherEmitter{
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit dispatches the lifecycle event, reporting dispatch failures without
// interrupting the caller's save cycle.
func (e *DispatcherEmitter) Emit(ctx context.Context, event string, payload interfaces.HookPayload) error {
	msg := RecordEvent{
		Event:    event,
		Model:    payload.Model,
		RecordID: payload.RecordID,
		Locales:  payload.Locales,
	}
	e.logger.Debug("hooks.emit", "event", event, "model", payload.Model)
	if err := dispatcher.Dispatch(ctx, msg); err != nil {
		return wrapDispatchError(err)
	}
	return nil
}

// NoOp returns an emitter that drops every event.
func NoOp() interfaces.HookEmitter {
	return interfaces.HookEmitterFunc(func(context.Context, string, interfaces.HookPayload) error {
		return nil
	})
}

func wrapDispatchError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "hook dispatch failed").
		WithTextCode(hookDispatchFailed)
}
