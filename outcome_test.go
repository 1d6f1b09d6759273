package main

import (
	"errors"
	"testing"
)

func TestOutcomeSettlesOnce(t *testing.T) {
	outcome := newOutcome(exampleLead())
	if outcome.State != StatePending {
		t.Fatalf("expected pending, got %s", outcome.State)
	}

	if err := outcome.succeed(&LeadSendingResponse{Payload: map[string]interface{}{"id": float64(1)}}); err != nil {
		t.Fatal(err)
	}
	if err := outcome.fail(errors.New("late")); !errors.Is(err, ErrAlreadySettled) {
		t.Fatalf("expected ErrAlreadySettled, got %v", err)
	}
	if outcome.State != StateSucceeded || outcome.Err != nil {
		t.Fatalf("settled outcome changed: %s %v", outcome.State, outcome.Err)
	}

	failed := newOutcome(exampleLead())
	if err := failed.fail(&RejectedError{StatusCode: 500}); err != nil {
		t.Fatal(err)
	}
	if err := failed.succeed(nil); !errors.Is(err, ErrAlreadySettled) {
		t.Fatalf("expected ErrAlreadySettled, got %v", err)
	}
	if failed.State.String() != "failed" {
		t.Fatalf("expected failed, got %s", failed.State)
	}
}

func TestOutcomeIdsDiffer(t *testing.T) {
	a, b := newOutcome(exampleLead()), newOutcome(exampleLead())
	if a.ID == b.ID {
		t.Fatal("expected distinct submission ids")
	}
}

func TestErrorKind(t *testing.T) {
	cases := map[string]error{
		"rejected":      &RejectedError{StatusCode: 400},
		"transport":     &TransportError{Err: errors.New("dial")},
		"serialization": &SerializationError{Err: errors.New("bad")},
		"decode":        &DecodeError{Err: errors.New("eof")},
		"unknown":       errors.New("other"),
	}
	for want, err := range cases {
		if got := errorKind(err); got != want {
			t.Errorf("errorKind(%v) = %q, want %q", err, got, want)
		}
	}
	if (&RejectedError{StatusCode: 502, Body: []byte("boom")}).Error() != RejectedMessage {
		t.Error("rejected error must use the fixed message")
	}
}
