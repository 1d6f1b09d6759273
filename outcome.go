package main

import (
	"github.com/google/uuid"
)

type State int

const (
	StatePending State = iota
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the result of one submission. It starts pending and settles once.
type Outcome struct {
	ID       uuid.UUID
	Lead     Lead
	State    State
	Response *LeadSendingResponse
	Err      error
}

func newOutcome(lead Lead) *Outcome {
	return &Outcome{ID: uuid.New(), Lead: lead, State: StatePending}
}

func (o *Outcome) succeed(response *LeadSendingResponse) error {
	if o.State != StatePending {
		return ErrAlreadySettled
	}
	o.State = StateSucceeded
	o.Response = response
	return nil
}

func (o *Outcome) fail(err error) error {
	if o.State != StatePending {
		return ErrAlreadySettled
	}
	o.State = StateFailed
	o.Err = err
	return nil
}

func (o *Outcome) Succeeded() bool { return o.State == StateSucceeded }
