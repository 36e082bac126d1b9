package framepack

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Error is the interface implemented by every error this module returns on its
// own behalf. Use [errors.Is] against the sentinels below to classify them.
type Error interface {
	error
	WithMessage(message string) Error
	Wrap(err error) Error
}

type baseFramepackError string

const rootError = baseFramepackError("")

var ErrEmptyCorpus = rootError.WithMessage("Frame corpus is empty")
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrMalformedPixelSource = rootError.WithMessage("Malformed pixel source")
var ErrMalformedStream = rootError.WithMessage("Malformed compressed stream")
var ErrShapeMismatch = rootError.WithMessage("Frame shape mismatch")
var ErrTruncatedStream = rootError.WithMessage("Compressed stream truncated")

func (e baseFramepackError) Error() string {
	return string(e)
}

func (e baseFramepackError) WithMessage(message string) Error {
	return customError{
		message:       message,
		originalError: e,
	}
}

func (e baseFramepackError) Wrap(err error) Error {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customError) Error() string {
	return e.message
}

func (e customError) WithMessage(message string) Error {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customError) Wrap(err error) Error {
	return customError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customError) Unwrap() error {
	return e.originalError
}
