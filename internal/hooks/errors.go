package hooks

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

const (
	observerValidationCode  = "HOOK_VALIDATION_FAILED"
	observerContextCanceled = "HOOK_CONTEXT_CANCELED"
	observerContextTimeout  = "HOOK_CONTEXT_TIMEOUT"
	observerContextError    = "HOOK_CONTEXT_ERROR"
	observerExecuteFailed   = "HOOK_OBSERVER_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "lifecycle event validation failed").
		WithTextCode(observerValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "lifecycle observer cancelled").
			WithTextCode(observerContextCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "lifecycle observer deadline exceeded").
			WithTextCode(observerContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "lifecycle observer context error").
			WithTextCode(observerContextError)
	}
}

func wrapObserveError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "lifecycle observer failed").
		WithTextCode(observerExecuteFailed)
}
