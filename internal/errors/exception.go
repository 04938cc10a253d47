package errors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindStorage    Kind = "storage"
	KindExport     Kind = "export"
)

// Exception is the error type surfaced to the presentation layer. Two
// exceptions match under errors.Is when their kinds agree and the target
// either carries no message or the same one.
type Exception struct {
	Kind    Kind
	Message string
	Err     error
}

var (
	ErrValidation = &Exception{Kind: KindValidation}
	ErrNotFound   = &Exception{Kind: KindNotFound}
	ErrStorage    = &Exception{Kind: KindStorage}
	ErrExport     = &Exception{Kind: KindExport}
)

func (e *Exception) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.Err
}

func (e *Exception) Is(target error) bool {
	t, ok := target.(*Exception)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func Storage(op string, err error) error {
	return &Exception{Kind: KindStorage, Message: op, Err: err}
}

func Export(op string, err error) error {
	return &Exception{Kind: KindExport, Message: op, Err: err}
}

func KindOf(err error) Kind {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// ExitCode maps an error to the process exit status used by the CLI.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindValidation:
		return 2
	case KindNotFound:
		return 3
	case KindStorage:
		return 4
	case KindExport:
		return 5
	default:
		return 1
	}
}
