package config

import (
	"errors"
	"fmt"
)

//Error represents an invalid or incomplete configuration for the selected
//mode; it is raised at construction time and never deferred.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid configuration: %v %v", e.Field, e.Message)
}

//NewError creates a configuration error
func NewError(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

//IsConfigError returns true if err is a configuration error
func IsConfigError(err error) bool {
	aConfigError := &Error{}
	return errors.As(err, &aConfigError)
}
