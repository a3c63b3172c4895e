package hooks

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

const defaultObserverTimeout = 30 * time.Second

// ObserverOption configures an Observer instance.
type ObserverOption func(*Observer)

// Observer wraps a lifecycle subscriber with validation, context management,
// logging and error tagging so hosts only supply the reaction itself.
type Observer struct {
	exec      command.CommandFunc[RecordEvent]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
}

// NewObserver creates an observer satisfying go-command's Commander
// interface for the RecordEvent message type.
func NewObserver(fn command.CommandFunc[RecordEvent], opts ...ObserverOption) *Observer {
	if fn == nil {
		panic("hooks: observer function cannot be nil")
	}
	o := &Observer{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: defaultObserverTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Execute conforms to command.Commander[RecordEvent].Execute, applying
// validation, timeout enforcement and logging before delegating to the
// wrapped function.
func (o *Observer) Execute(ctx context.Context, msg RecordEvent) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := o.withTimeout(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	fields := map[string]any{
		"event": msg.Event,
		"model": msg.Model,
	}
	if o.operation != "" {
		fields["operation"] = o.operation
	}
	logger := logging.WithFields(o.logger, fields)
	logger.Debug("hooks.observe.start")

	if err := o.exec(ctx, msg); err != nil {
		logger.Error("hooks.observe.failed", "error", err)
		return wrapObserveError(err)
	}

	logger.Debug("hooks.observe.done")
	return nil
}

// WithTimeout overrides the default observer timeout. Zero or negative
// disables the deadline.
func WithTimeout(timeout time.Duration) ObserverOption {
	return func(o *Observer) {
		if timeout <= 0 {
			o.timeout = 0
			return
		}
		o.timeout = timeout
	}
}

// WithLogger injects the logger used while observing. Defaults to no-op.
func WithLogger(logger interfaces.Logger) ObserverOption {
	return func(o *Observer) {
		if logger == nil {
			o.logger = logging.NoOp()
			return
		}
		o.logger = logger
	}
}

// WithOperation names the observer in its log entries.
func WithOperation(operation string) ObserverOption {
	return func(o *Observer) {
		o.operation = operation
	}
}

func (o *Observer) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, o.timeout)
}

// Subscription detaches an observer from the dispatcher.
type Subscription interface {
	Unsubscribe()
}

// Subscribe registers the observer for lifecycle events with a single retry
// on transient failures.
func Subscribe(fn command.CommandFunc[RecordEvent], opts ...ObserverOption) Subscription {
	return dispatcher.SubscribeCommand(NewObserver(fn, opts...), runner.WithMaxRetries(1))
}
