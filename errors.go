package main

import (
	"errors"
	"fmt"
)

// RejectedMessage is what a non-2xx answer is reported as. The body is not inspected.
const RejectedMessage = "Ошибка при отправке"

var ErrAlreadySettled = errors.New("submission already settled")

// TransportError means no response could be obtained at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError means the server answered with a non-2xx status.
// Body is kept raw for debug output only.
type RejectedError struct {
	StatusCode int
	Body       []byte
}

func (e *RejectedError) Error() string { return RejectedMessage }

type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize lead: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// DecodeError means a 2xx response did not carry a JSON object.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// errorKind names the failure branch for log output.
func errorKind(err error) string {
	var (
		rejected      *RejectedError
		transport     *TransportError
		serialization *SerializationError
		decode        *DecodeError
	)
	switch {
	case errors.As(err, &rejected):
		return "rejected"
	case errors.As(err, &transport):
		return "transport"
	case errors.As(err, &serialization):
		return "serialization"
	case errors.As(err, &decode):
		return "decode"
	}
	return "unknown"
}
