// Package session is the state container behind the advert page: the form,
// the latest generation result, and the one-generation-at-a-time gate.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/advert-generator/internal/advert"
	"github.com/jonathan/advert-generator/internal/form"
	"github.com/jonathan/advert-generator/internal/logging"
	"github.com/jonathan/advert-generator/internal/metrics"
	"github.com/jonathan/advert-generator/internal/types"
)

// UnexpectedErrorMessage is shown for failures that carry no user-facing message.
const UnexpectedErrorMessage = "An unexpected error occurred"

var (
	// ErrPending is returned when a submit arrives while a generation is in flight
	ErrPending = errors.New("a generation is already in progress")
	// ErrIncomplete is returned when title or notes are empty; no call is made
	ErrIncomplete = errors.New("job title and notes are required")
)

// Generator turns a prompt into advert markdown
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Session owns one form and its generation result
type Session struct {
	mu        sync.Mutex
	form      *form.State
	result    types.GenerationResult
	inflight  *semaphore.Weighted
	generator Generator
	logger    *zap.Logger
}

// New creates a session with a default form and an idle result.
func New(generator Generator, logger *zap.Logger) *Session {
	return &Session{
		form:      form.New(),
		result:    types.IdleResult(),
		inflight:  semaphore.NewWeighted(1),
		generator: generator,
		logger:    logging.OrNop(logger),
	}
}

// NewWithInput creates a session whose form holds input, auto-corrected.
func NewWithInput(generator Generator, logger *zap.Logger, input types.JobFormInput) (*Session, error) {
	state, err := form.FromInput(input)
	if err != nil {
		return nil, err
	}
	s := New(generator, logger)
	s.form = state
	return s, nil
}

// Form returns the current form input.
func (s *Session) Form() types.JobFormInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Input()
}

// Result returns the latest generation result.
func (s *Session) Result() types.GenerationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Update applies fn to the form. Edits are allowed while a generation runs;
// the running generation keeps the snapshot it started with.
func (s *Session) Update(fn func(*form.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.form)
}

// CanSubmit reports whether Submit would reach the generator.
func (s *Session) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.CanSubmit() && !s.result.IsPending()
}

// Submit snapshots the form, builds the prompt and waits for the generator.
// Generation failures are reported in the returned result, not as an error;
// the error is reserved for submissions that never reached the generator.
func (s *Session) Submit(ctx context.Context) (types.GenerationResult, error) {
	if !s.inflight.TryAcquire(1) {
		metrics.SubmissionsRejected.WithLabelValues("pending").Inc()
		return s.Result(), ErrPending
	}
	defer s.inflight.Release(1)

	s.mu.Lock()
	if !s.form.CanSubmit() {
		s.mu.Unlock()
		metrics.SubmissionsRejected.WithLabelValues("incomplete").Inc()
		return s.Result(), ErrIncomplete
	}
	snapshot := s.form.Input()
	id := uuid.New().String()
	s.result = types.PendingResult(id)
	s.mu.Unlock()

	logger := s.logger.With(zap.String("generation_id", id))
	logger.Info("generating advert",
		zap.String("job_title", snapshot.JobTitle),
		zap.String("location", snapshot.Location.String()),
		zap.Bool("relocation", snapshot.RelocationApplicable),
	)

	content, err := s.generator.Generate(ctx, advert.BuildPrompt(snapshot))

	var result types.GenerationResult
	if err != nil {
		result = types.FailedResult(id, userMessage(err))
		logger.Warn("advert generation failed", zap.String("message", result.ErrorMessage))
	} else {
		result = types.SucceededResult(id, content)
		logger.Info("advert generation succeeded", zap.Int("content_chars", len(content)))
	}

	s.mu.Lock()
	s.result = result
	s.mu.Unlock()

	return result, nil
}

// userMessage converts a generator error into text safe to show the user.
func userMessage(err error) string {
	var cfgErr *advert.ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Error()
	}
	var provErr *advert.ProviderError
	if errors.As(err, &provErr) {
		return provErr.Error()
	}
	return UnexpectedErrorMessage
}
