package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"docsage/internal/domain"
	"docsage/internal/llm"
	"docsage/internal/llm/parse"
	"docsage/internal/metrics"
	"docsage/internal/port"
)

// recordTimeout bounds the terminal status writes, which run on their own
// context independent of the extraction deadline.
const recordTimeout = 10 * time.Second

// ExtractionStatus is what a caller sees when polling an extraction job.
type ExtractionStatus struct {
	DocumentHash string
	Status       domain.JobStatus
	Result       *domain.ExtractionResult
	ErrorDetail  string
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// ExtractionService manages adaptive structured extraction jobs.
type ExtractionService interface {
	// StartOrAttach begins extraction for a document, or attaches to the job
	// already covering it. The returned bool reports whether this call
	// started the work.
	StartOrAttach(ctx context.Context, documentHash string) (*ExtractionStatus, bool, error)
	Poll(ctx context.Context, documentHash string) (*ExtractionStatus, error)
	Invalidate(ctx context.Context, documentHash string) error
}

type extractionService struct {
	jobRepo port.ExtractionJobRepository
	texts   port.DocumentTextProvider
	llm     port.CompletionClient
	metrics *metrics.Metrics
	timeout time.Duration
	sem     chan struct{}
}

// NewExtractionService creates a new ExtractionService implementation.
// timeout bounds the background extraction run, model call included;
// maxConcurrent caps the number of extractions running at once.
func NewExtractionService(
	jobRepo port.ExtractionJobRepository,
	texts port.DocumentTextProvider,
	completions port.CompletionClient,
	m *metrics.Metrics,
	timeout time.Duration,
	maxConcurrent int,
) ExtractionService {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &extractionService{
		jobRepo: jobRepo,
		texts:   texts,
		llm:     completions,
		metrics: m,
		timeout: timeout,
		sem:     make(chan struct{}, maxConcurrent),
	}
}

func (s *extractionService) StartOrAttach(ctx context.Context, documentHash string) (*ExtractionStatus, bool, error) {
	if !domain.ValidDocumentHash(documentHash) {
		return nil, false, fmt.Errorf("%w: document_hash must be a 64-character lowercase hex digest", domain.ErrInvalidInput)
	}

	// Resolve the document before claiming the job so an unknown hash is a
	// 404, not a failed job record.
	pages, err := s.texts.GetText(ctx, documentHash)
	if err != nil {
		return nil, false, err
	}

	job, started, err := s.jobRepo.StartIfIdle(ctx, documentHash)
	if err != nil {
		return nil, false, err
	}

	status, err := s.toStatus(job)
	if err != nil {
		return nil, false, err
	}

	if !started {
		s.countJob("attached")
		return status, false, nil
	}

	s.countJob("started")
	log.Printf("extractionService.StartOrAttach: starting extraction for document %s", documentHash)

	// The request context ends with the response; the job runs on its own
	// deadline.
	go s.extractInBackground(documentHash, pages)

	return status, true, nil
}

func (s *extractionService) extractInBackground(documentHash string, pages []domain.Page) {
	s.sem <- struct{}{}
	defer func() { <-s.sem }()

	// The extraction deadline starts once a slot is acquired; jobs queued
	// behind the concurrency cap are not charged for the wait.
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()

	result, err := s.extract(ctx, pages)
	if err != nil {
		log.Printf("extractionService.extractInBackground: extraction failed for document %s: %v", documentHash, err)
		s.failJob(documentHash, err.Error())
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		s.failJob(documentHash, fmt.Sprintf("encoding result: %v", err))
		return
	}

	writeCtx, writeCancel := context.WithTimeout(context.Background(), recordTimeout)
	defer writeCancel()
	if err := s.jobRepo.Complete(writeCtx, documentHash, raw); err != nil {
		log.Printf("extractionService.extractInBackground: failed to record success for %s: %v", documentHash, err)
		return
	}

	s.countJob("succeeded")
	if s.metrics != nil {
		s.metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	}
	log.Printf("extractionService.extractInBackground: extraction succeeded for document %s (%d fields)",
		documentHash, len(result.Fields))
}

// failJob records the failure on its own context: when the extraction has
// exhausted its deadline, the terminal write must still go through or the job
// stays running forever and the document can never be retried.
func (s *extractionService) failJob(documentHash, detail string) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := s.jobRepo.Fail(ctx, documentHash, detail); err != nil {
		log.Printf("extractionService.failJob: failed to record failure for %s: %v", documentHash, err)
	}
	s.countJob("failed")
}

func (s *extractionService) extract(ctx context.Context, pages []domain.Page) (*domain.ExtractionResult, error) {
	prompt := llm.BuildExtractionPrompt(pages)

	llmStart := time.Now()
	raw, err := s.llm.Complete(ctx, prompt)
	if s.metrics != nil {
		s.metrics.CompletionLatency.WithLabelValues("extract").Observe(time.Since(llmStart).Seconds())
	}
	if err != nil {
		return nil, err
	}

	return parse.ParseExtraction(raw)
}

// Poll reports the current job state without side effects. A document with no
// job record has simply never been extracted.
func (s *extractionService) Poll(ctx context.Context, documentHash string) (*ExtractionStatus, error) {
	if !domain.ValidDocumentHash(documentHash) {
		return nil, fmt.Errorf("%w: document_hash must be a 64-character lowercase hex digest", domain.ErrInvalidInput)
	}

	job, err := s.jobRepo.Get(ctx, documentHash)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return &ExtractionStatus{
			DocumentHash: documentHash,
			Status:       domain.JobStatusNotStarted,
		}, nil
	}
	return s.toStatus(job)
}

// Invalidate removes the job record so the next extract request starts fresh.
func (s *extractionService) Invalidate(ctx context.Context, documentHash string) error {
	if !domain.ValidDocumentHash(documentHash) {
		return fmt.Errorf("%w: document_hash must be a 64-character lowercase hex digest", domain.ErrInvalidInput)
	}
	return s.jobRepo.Delete(ctx, documentHash)
}

func (s *extractionService) toStatus(job *domain.ExtractionJob) (*ExtractionStatus, error) {
	status := &ExtractionStatus{
		DocumentHash: job.DocumentHash,
		Status:       job.Status,
		ErrorDetail:  job.ErrorDetail,
		StartedAt:    &job.StartedAt,
		CompletedAt:  job.CompletedAt,
	}
	if job.Status == domain.JobStatusSucceeded {
		result, err := job.DecodeResult()
		if err != nil {
			return nil, err
		}
		status.Result = result
	}
	return status, nil
}

func (s *extractionService) countJob(outcome string) {
	if s.metrics != nil {
		s.metrics.ExtractionJobsTotal.WithLabelValues(outcome).Inc()
	}
}
