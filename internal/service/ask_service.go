package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"docsage/internal/domain"
	"docsage/internal/llm"
	"docsage/internal/llm/parse"
	"docsage/internal/metrics"
	"docsage/internal/port"
)

const maxQuestionLength = 2000

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrConversationNotFound)
}

// AskInput is the DTO for asking a question about a document.
type AskInput struct {
	DocumentHash string
	Question     string
}

// AskService defines the question-answering contract.
type AskService interface {
	Ask(ctx context.Context, input *AskInput) (*domain.Conversation, error)
	List(ctx context.Context, documentHash string) ([]domain.Conversation, error)
	Delete(ctx context.Context, documentHash, question string) error
	DeleteAll(ctx context.Context, documentHash string) (int64, error)
}

type askService struct {
	convRepo port.ConversationRepository
	texts    port.DocumentTextProvider
	llm      port.CompletionClient
	metrics  *metrics.Metrics
	group    singleflight.Group
}

// NewAskService creates a new AskService implementation.
func NewAskService(
	convRepo port.ConversationRepository,
	texts port.DocumentTextProvider,
	completions port.CompletionClient,
	m *metrics.Metrics,
) AskService {
	return &askService{
		convRepo: convRepo,
		texts:    texts,
		llm:      completions,
		metrics:  m,
	}
}

// Ask answers a question about a document, serving repeats of the exact same
// (document, question) pair from the conversation store without touching the
// model. Concurrent identical asks are collapsed into a single model call.
func (s *askService) Ask(ctx context.Context, input *AskInput) (*domain.Conversation, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" || len(question) > maxQuestionLength {
		return nil, fmt.Errorf("%w: question must be 1-%d characters", domain.ErrInvalidInput, maxQuestionLength)
	}
	if !domain.ValidDocumentHash(input.DocumentHash) {
		return nil, fmt.Errorf("%w: document_hash must be a 64-character lowercase hex digest", domain.ErrInvalidInput)
	}

	start := time.Now()

	cached, err := s.convRepo.Get(ctx, input.DocumentHash, question)
	if err == nil {
		s.observeAsk("cached", "hit", start)
		return cached, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	key := input.DocumentHash + "\x00" + question
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.answer(ctx, input.DocumentHash, question)
	})
	if err != nil {
		s.observeAsk("error", "miss", start)
		return nil, err
	}

	s.observeAsk("answered", "miss", start)
	return v.(*domain.Conversation), nil
}

func (s *askService) answer(ctx context.Context, documentHash, question string) (*domain.Conversation, error) {
	// A concurrent caller may have persisted the answer while this one waited
	// in the flight group.
	if cached, err := s.convRepo.Get(ctx, documentHash, question); err == nil {
		return cached, nil
	} else if !isNotFound(err) {
		return nil, err
	}

	pages, err := s.texts.GetText(ctx, documentHash)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildAskPrompt(question, pages)

	llmStart := time.Now()
	raw, err := s.llm.Complete(ctx, prompt)
	if s.metrics != nil {
		s.metrics.CompletionLatency.WithLabelValues("ask").Observe(time.Since(llmStart).Seconds())
	}
	if err != nil {
		return nil, err
	}

	payload, err := parse.ParseAnswer(raw)
	if err != nil {
		return nil, err
	}

	conv := &domain.Conversation{
		ID:           uuid.New(),
		DocumentHash: documentHash,
		Question:     question,
		Answer:       payload.Answer,
		Confidence:   payload.Confidence,
		Reasoning:    payload.Reasoning,
		Source:       payload.Source,
		Verified:     payload.Verified,
		CreatedAt:    time.Now().UTC(),
	}

	// Persist before returning so a repeat of this question is served from
	// the store.
	if err := s.convRepo.Put(ctx, conv); err != nil {
		return nil, err
	}

	log.Printf("askService.answer: answered question for document %s (confidence %.2f)",
		documentHash, conv.Confidence)

	return conv, nil
}

func (s *askService) List(ctx context.Context, documentHash string) ([]domain.Conversation, error) {
	if !domain.ValidDocumentHash(documentHash) {
		return nil, fmt.Errorf("%w: document_hash must be a 64-character lowercase hex digest", domain.ErrInvalidInput)
	}
	return s.convRepo.List(ctx, documentHash)
}

func (s *askService) Delete(ctx context.Context, documentHash, question string) error {
	if !domain.ValidDocumentHash(documentHash) {
		return fmt.Errorf("%w: document_hash must be a 64-character lowercase hex digest", domain.ErrInvalidInput)
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("%w: question is required", domain.ErrInvalidInput)
	}
	return s.convRepo.Delete(ctx, documentHash, question)
}

func (s *askService) DeleteAll(ctx context.Context, documentHash string) (int64, error) {
	if !domain.ValidDocumentHash(documentHash) {
		return 0, fmt.Errorf("%w: document_hash must be a 64-character lowercase hex digest", domain.ErrInvalidInput)
	}
	n, err := s.convRepo.DeleteAll(ctx, documentHash)
	if err != nil {
		return 0, err
	}
	log.Printf("askService.DeleteAll: removed %d conversations for document %s", n, documentHash)
	return n, nil
}

func (s *askService) observeAsk(outcome, cacheStatus string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.AsksTotal.WithLabelValues(outcome).Inc()
	s.metrics.AskLatency.WithLabelValues(cacheStatus).Observe(time.Since(start).Seconds())
	if cacheStatus == "hit" {
		s.metrics.CacheHitsTotal.Inc()
	} else {
		s.metrics.CacheMissesTotal.Inc()
	}
}
