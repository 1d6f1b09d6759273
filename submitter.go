package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/clarketm/json"
	"github.com/rs/zerolog"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

type Submitter struct {
	apiUrl string
	token  string
	debug  bool
	client *http.Client
	logger zerolog.Logger
}

// NewSubmitter builds a submitter for cfg. A nil client gets one with cfg.Timeout.
func NewSubmitter(cfg *Config, client *http.Client, logger zerolog.Logger) *Submitter {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Submitter{
		apiUrl: cfg.ApiUrl,
		token:  cfg.Token,
		debug:  cfg.Debug,
		client: client,
		logger: logger,
	}
}

// Run submits lead and reports the settled outcome exactly once.
func (s *Submitter) Run(ctx context.Context, lead Lead, reporter Reporter) *Outcome {
	outcome := s.Submit(ctx, lead)
	if outcome.Succeeded() {
		reporter.ReportSuccess(outcome)
	} else {
		reporter.ReportFailure(outcome)
	}
	return outcome
}

// Submit sends lead in a single POST. The returned outcome is always settled.
func (s *Submitter) Submit(ctx context.Context, lead Lead) *Outcome {
	outcome := newOutcome(lead)
	log := s.logger.With().Str("submission", outcome.ID.String()).Logger()

	response, err := s.sendLead(ctx, log, prepareLead(lead))
	if err != nil {
		_ = outcome.fail(err)
		return outcome
	}
	_ = outcome.succeed(response)
	return outcome
}

func (s *Submitter) sendLead(ctx context.Context, log zerolog.Logger, lead Lead) (*LeadSendingResponse, error) {
	if err := lead.Validate(); err != nil {
		return nil, err
	}
	leadJson, err := json.Marshal(lead)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	log.Debug().RawJSON("lead", leadJson).Msg("lead prepared")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiUrl, bytes.NewReader(leadJson))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}
	if s.debug {
		log.Debug().
			Str("url", req.URL.String()).
			Str("status", resp.Status).
			Interface("headers", resp.Header).
			Msg("response received")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RejectedError{StatusCode: resp.StatusCode, Body: body}
	}
	return parseResponseBody(body)
}
