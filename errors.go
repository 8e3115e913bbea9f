package notionify

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	publishValidationCode    = "PUBLISH_VALIDATION_FAILED"
	publishPayloadInvalid    = "PUBLISH_PAYLOAD_INVALID"
	publishContextCanceled   = "PUBLISH_CONTEXT_CANCELED"
	publishContextTimeout    = "PUBLISH_CONTEXT_TIMEOUT"
	publishExecuteFailedCode = "PUBLISH_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "publish request invalid").
		WithTextCode(publishValidationCode)
}

func wrapPayloadError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "serialized blocks rejected by schema").
		WithTextCode(publishPayloadInvalid)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "publish cancelled").
			WithTextCode(publishContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "publish deadline exceeded").
			WithTextCode(publishContextTimeout)
	}
	return wrapExecuteError(err)
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "publish failed").
		WithTextCode(publishExecuteFailedCode)
}

// IsValidationError 报告 err 是否由非法请求引起
func IsValidationError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}
