package hooks

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-translatable/pkg/interfaces"
)

const recordEventMessageType = "translatable.record.lifecycle"

// RecordEvent is the go-command message carrying one lifecycle notification.
// Subscribers register a handler for the message type and switch on Event.
type RecordEvent struct {
	// Event is the lifecycle name: saving, saved, updated or created.
	Event string `json:"event"`
	// Model identifies which translatable model the record belongs to.
	Model string `json:"model"`
	// RecordID is the base record key, empty while a new record is still
	// unpersisted (the saving event of a first save).
	RecordID string `json:"record_id,omitempty"`
	// Locales lists the locale codes present on the record's translation set.
	Locales []string `json:"locales,omitempty"`
}

// Type implements command.Message.
func (RecordEvent) Type() string { return recordEventMessageType }

// Validate ensures the event names a known lifecycle stage and model before
// handlers execute.
func (e RecordEvent) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Event, validation.Required, validation.By(func(value any) error {
			switch value.(string) {
			case interfaces.HookSaving, interfaces.HookSaved, interfaces.HookUpdated, interfaces.HookCreated:
				return nil
			}
			return validation.NewError("translatable.record.lifecycle.event_unknown", "unknown lifecycle event")
		})),
		validation.Field(&e.Model, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("translatable.record.lifecycle.model_required", "model is required")
			}
			return nil
		})),
	)
}
