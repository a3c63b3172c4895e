package interfaces

import "context"

// Hook event names emitted during a save cycle. The saving event fires before
// any persistence runs; saved and updated fire after a successful cycle, even
// when the base record itself had no pending changes, so observers keyed to
// save notifications are never silently skipped. The created event fires only
// when the base record was inserted for the first time.
const (
	HookSaving  = "saving"
	HookSaved   = "saved"
	HookUpdated = "updated"
	HookCreated = "created"
)

// HookPayload describes the record a lifecycle event refers to.
type HookPayload struct {
	Model    string         `json:"model"`
	RecordID string         `json:"record_id"`
	Locales  []string       `json:"locales,omitempty"`
	Fields   map[string]any `json:"fields,omitempty"`
}

// HookEmitter delivers lifecycle notifications to external observers. Emit
// errors are reported to the caller but never interrupt the save cycle.
type HookEmitter interface {
	Emit(ctx context.Context, event string, payload HookPayload) error
}

// HookEmitterFunc adapts a plain function to the HookEmitter contract.
type HookEmitterFunc func(ctx context.Context, event string, payload HookPayload) error

func (f HookEmitterFunc) Emit(ctx context.Context, event string, payload HookPayload) error {
	return f(ctx, event, payload)
}
