package mealdb

import "errors"

const fetchFailurePrefix = "failed to fetch from MealDB: "

// NetworkError reports a transport failure or a non-success HTTP status.
// StatusCode is zero when no response was received.
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string { return fetchFailurePrefix + causeMessage(e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a body that is not JSON or does not have the expected shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fetchFailurePrefix + causeMessage(e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// ErrUnexpectedShape marks a well-formed JSON body missing a required collection.
var ErrUnexpectedShape = errors.New("unexpected response shape")

func causeMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
