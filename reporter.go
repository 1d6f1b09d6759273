package main

import (
	"errors"

	"github.com/cheggaaa/pb/v3"
	"github.com/clarketm/json"
	"github.com/rs/zerolog"
)

const (
	SuccessMessage = "Заявка успешно создана!"
	FailureMessage = "Сбой отправки:"
)

type Reporter interface {
	ReportSuccess(outcome *Outcome)
	ReportFailure(outcome *Outcome)
}

// ConsoleReporter writes the settled outcome to a zerolog logger.
type ConsoleReporter struct {
	logger zerolog.Logger
	debug  bool
}

func NewConsoleReporter(logger zerolog.Logger, debug bool) *ConsoleReporter {
	return &ConsoleReporter{logger: logger, debug: debug}
}

func (r *ConsoleReporter) ReportSuccess(outcome *Outcome) {
	event := r.logger.Info().
		Str("submission", outcome.ID.String()).
		Str("direction", translateDirection(outcome.Lead.Direction))
	if outcome.Response != nil {
		if payload, err := json.Marshal(outcome.Response.Payload); err == nil {
			event = event.RawJSON("payload", payload)
		}
	}
	if leadId, ok := outcome.Response.LeadId(); ok {
		event = event.Str("lead_id", leadId)
	}
	event.Msg(SuccessMessage)
}

func (r *ConsoleReporter) ReportFailure(outcome *Outcome) {
	event := r.logger.Error().
		Str("submission", outcome.ID.String()).
		Str("kind", errorKind(outcome.Err)).
		Str("error", outcome.Err.Error())

	var rejected *RejectedError
	if errors.As(outcome.Err, &rejected) {
		event = event.Int("status", rejected.StatusCode)
		if r.debug {
			event = event.Str("body", string(rejected.Body))
		}
	}
	event.Msg(FailureMessage)
}

// progressReporter advances a progress bar before handing the outcome on,
// so the bar is finished when the result line is printed.
type progressReporter struct {
	bar  *pb.ProgressBar
	next Reporter
}

func newProgressReporter(bar *pb.ProgressBar, next Reporter) *progressReporter {
	return &progressReporter{bar: bar, next: next}
}

func (r *progressReporter) ReportSuccess(outcome *Outcome) {
	r.bar.Increment()
	r.bar.Finish()
	r.next.ReportSuccess(outcome)
}

func (r *progressReporter) ReportFailure(outcome *Outcome) {
	r.bar.Increment()
	r.bar.Finish()
	r.next.ReportFailure(outcome)
}
