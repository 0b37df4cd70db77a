// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chat runs the question pipeline: research aggregation, prompt
// construction, model completion, and follow-up selection.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mdmze/advice-engine/internal/research"
	"github.com/mdmze/advice-engine/pkg/types"
)

// Completer abstracts the hosted language model. The production
// implementation is OpenAIClient; tests substitute a mock.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// State tracks a session's turn lifecycle.
type State int

const (
	// StateIdle means no question has been asked yet.
	StateIdle State = iota
	// StateAwaitingResponse means a turn is in flight.
	StateAwaitingResponse
	// StateRendered means the last turn completed with an answer.
	StateRendered
	// StateErrored means the last turn failed.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingResponse:
		return "awaiting-response"
	case StateRendered:
		return "rendered"
	case StateErrored:
		return "errored"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrTurnInFlight is returned by Ask while a previous turn is still
// awaiting its response.
var ErrTurnInFlight = errors.New("a turn is already in flight")

// Turn is the outcome of one question.
type Turn struct {
	Query     string         `json:"query"`
	Answer    string         `json:"answer"`
	Sources   []types.Record `json:"sources"`
	FollowUps []string       `json:"followUpQuestions,omitempty"`

	// Fallback marks an answer produced from the aggregator's advisory
	// text without consulting the model.
	Fallback bool `json:"fallback,omitempty"`
}

// Session drives the pipeline for a sequence of questions. A new question
// is accepted only from a terminal state (idle, rendered, errored); Ask
// returns ErrTurnInFlight otherwise.
type Session struct {
	Aggregator *research.Aggregator
	Completer  Completer

	// Warnings receives per-source failure notes from the aggregator.
	// Defaults to io.Discard.
	Warnings io.Writer

	mu    sync.Mutex
	state State
}

// State returns the session's current turn state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAwaitingResponse {
		return ErrTurnInFlight
	}
	s.state = StateAwaitingResponse
	return nil
}

func (s *Session) finish(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Ask runs one full turn: aggregate research, build the prompt, complete,
// and attach sources and follow-up questions. When no research survives
// the aggregation the advisory text is returned as the answer and the
// model is not consulted.
func (s *Session) Ask(ctx context.Context, question string) (*Turn, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	warnings := s.Warnings
	if warnings == nil {
		warnings = io.Discard
	}

	out, err := s.Aggregator.Search(ctx, question, warnings)
	if err != nil {
		s.finish(StateErrored)
		return nil, err
	}

	personal := research.IsPersonal(question)

	if len(out.Records) == 0 {
		s.finish(StateRendered)
		return &Turn{
			Query:     question,
			Answer:    out.Fallback,
			Sources:   []types.Record{},
			FollowUps: research.FollowUps(question, personal),
			Fallback:  true,
		}, nil
	}

	system := SystemPrompt(question, personal, out.Records)
	answer, err := s.Completer.Complete(ctx, system, question)
	if err != nil {
		s.finish(StateErrored)
		return nil, fmt.Errorf("completing answer: %w", err)
	}

	s.finish(StateRendered)
	return &Turn{
		Query:     question,
		Answer:    answer,
		Sources:   out.Records,
		FollowUps: research.FollowUps(question, personal),
	}, nil
}
