package hooks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-translatable/internal/hooks"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

func TestEmitterDeliversToSubscribedObserver(t *testing.T) {
	var received []hooks.RecordEvent
	sub := hooks.Subscribe(func(_ context.Context, msg hooks.RecordEvent) error {
		received = append(received, msg)
		return nil
	})
	t.Cleanup(sub.Unsubscribe)

	emitter := hooks.NewDispatcherEmitter()
	payload := interfaces.HookPayload{
		Model:    "product",
		RecordID: "8a9c9e9a-0000-0000-0000-000000000001",
		Locales:  []string{"en", "de"},
	}
	if err := emitter.Emit(context.Background(), interfaces.HookSaved, payload); err != nil {
		t.Fatalf("emit: %v", err)
	}

	if len(received) != 1 {
		t.Fatalf("expected one delivery got %d", len(received))
	}
	got := received[0]
	if got.Event != interfaces.HookSaved || got.Model != "product" {
		t.Fatalf("unexpected event %+v", got)
	}
	if got.RecordID != payload.RecordID {
		t.Fatalf("expected record id carried, got %q", got.RecordID)
	}
	if len(got.Locales) != 2 {
		t.Fatalf("expected locales carried, got %v", got.Locales)
	}
}

func TestObserverRetriesOnceOnTransientFailure(t *testing.T) {
	var attempts int
	sub := hooks.Subscribe(func(context.Context, hooks.RecordEvent) error {
		attempts++
		if attempts == 1 {
			return errors.New("transient failure")
		}
		return nil
	})
	t.Cleanup(sub.Unsubscribe)

	emitter := hooks.NewDispatcherEmitter()
	err := emitter.Emit(context.Background(), interfaces.HookSaving, interfaces.HookPayload{Model: "product"})
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts got %d", attempts)
	}
}

func TestObserverRejectsMalformedEvents(t *testing.T) {
	var deliveries int
	sub := hooks.Subscribe(func(context.Context, hooks.RecordEvent) error {
		deliveries++
		return nil
	})
	t.Cleanup(sub.Unsubscribe)

	emitter := hooks.NewDispatcherEmitter()
	err := emitter.Emit(context.Background(), "vanished", interfaces.HookPayload{Model: "product"})
	if err == nil {
		t.Fatal("expected a dispatch failure for an unknown lifecycle event")
	}
	if deliveries != 0 {
		t.Fatalf("malformed events must not reach the reaction, got %d deliveries", deliveries)
	}
}
