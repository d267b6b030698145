package constants

import (
	"errors"
	"net/http"
)

// CodedError несёт код ответа, который внешний слой отдаёт клиенту.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound            = NewCodedError("not found", http.StatusNotFound)
	ErrInvalidParameters     = NewCodedError("invalid markup parameters", http.StatusBadRequest)
	ErrNoActiveConfiguration = NewCodedError("no active markup configuration for tender", http.StatusNotFound)
)

// CodeOf returns the code of the first CodedError in err's chain, or 500.
func CodeOf(err error) int {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return http.StatusInternalServerError
}
