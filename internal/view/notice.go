package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is the inline message shown above the table.
type Notice struct {
	Level Level
	Text  string
}

func Success(format string, args ...any) *Notice {
	return &Notice{Level: LevelSuccess, Text: fmt.Sprintf(format, args...)}
}

func Warning(format string, args ...any) *Notice {
	return &Notice{Level: LevelWarning, Text: fmt.Sprintf(format, args...)}
}

// statusCoder is implemented by remote rejection errors.
type statusCoder interface {
	StatusCode() int
}

// Failure turns an error into a message an operator can act on.
func Failure(action string, err error) *Notice {
	var text string
	var sc statusCoder

	switch {
	case errors.Is(err, domain.ErrValidation):
		text = strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
	case errors.Is(err, domain.ErrNotFound):
		text = "the record no longer exists"
	case errors.Is(err, domain.ErrUnavailable):
		text = "the booking service could not be reached"
	case errors.As(err, &sc):
		text = fmt.Sprintf("the booking service rejected the request (status %d)", sc.StatusCode())
	case errors.Is(err, domain.ErrRejected):
		text = "the booking service rejected the request"
	case errors.Is(err, domain.ErrEmptyResponse):
		text = "the booking service returned no data"
	case errors.Is(err, domain.ErrMalformedResponse):
		text = "the booking service returned data that could not be read"
	default:
		text = "an unexpected error occurred"
	}

	return &Notice{Level: LevelError, Text: fmt.Sprintf("Failed to %s: %s", action, text)}
}
