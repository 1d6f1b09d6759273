package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cheggaaa/pb/v3"
	"github.com/rs/zerolog"
)

type recordingReporter struct {
	successes, failures int
}

func (r *recordingReporter) ReportSuccess(*Outcome) { r.successes++ }
func (r *recordingReporter) ReportFailure(*Outcome) { r.failures++ }

func TestConsoleReporterSuccess(t *testing.T) {
	var logs bytes.Buffer
	reporter := NewConsoleReporter(zerolog.New(&logs), false)

	outcome := newOutcome(exampleLead())
	_ = outcome.succeed(&LeadSendingResponse{Payload: map[string]interface{}{"id": float64(123)}})
	reporter.ReportSuccess(outcome)

	out := logs.String()
	for _, want := range []string{
		`"level":"info"`,
		`"payload":{"id":123}`,
		`"direction":"Виза"`,
		`"submission":"` + outcome.ID.String() + `"`,
		SuccessMessage,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %s", want, out)
		}
	}
}

func TestConsoleReporterFailure(t *testing.T) {
	var logs bytes.Buffer
	reporter := NewConsoleReporter(zerolog.New(&logs), false)

	outcome := newOutcome(exampleLead())
	_ = outcome.fail(&TransportError{Err: errString("dial tcp: connection refused")})
	reporter.ReportFailure(outcome)

	out := logs.String()
	for _, want := range []string{`"level":"error"`, `"kind":"transport"`, "connection refused", FailureMessage} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %s", want, out)
		}
	}
	if strings.Contains(out, `"status"`) {
		t.Errorf("transport failure has no status: %s", out)
	}
}

func TestProgressReporterFinishesBar(t *testing.T) {
	var progress bytes.Buffer
	bar := pb.New(1).SetWriter(&progress).Start()
	next := &recordingReporter{}
	reporter := newProgressReporter(bar, next)

	reporter.ReportSuccess(newOutcome(exampleLead()))

	if bar.Current() != 1 {
		t.Errorf("expected bar at 1, got %d", bar.Current())
	}
	if next.successes != 1 || next.failures != 0 {
		t.Errorf("expected one success report, got %+v", next)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
