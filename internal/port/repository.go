package port

import (
	"context"

	"docsage/internal/domain"
)

// ConversationRepository is the durable store for question/answer records.
// Lookups are by exact question text; two differently phrased equivalent
// questions are distinct entries.
type ConversationRepository interface {
	Get(ctx context.Context, documentHash, question string) (*domain.Conversation, error)
	Put(ctx context.Context, conv *domain.Conversation) error
	List(ctx context.Context, documentHash string) ([]domain.Conversation, error)
	Delete(ctx context.Context, documentHash, question string) error

	// DeleteAll removes every record for the document and reports how many
	// were deleted.
	DeleteAll(ctx context.Context, documentHash string) (int64, error)
}

// ExtractionJobRepository persists extraction job state. The at-most-one
// running job invariant is enforced here with conditional writes, so it holds
// across concurrent requests and across service instances.
type ExtractionJobRepository interface {
	// StartIfIdle atomically creates a running job if none exists, or flips an
	// existing failed job back to running. It returns the job and whether this
	// caller won the transition (started == false means a running or
	// succeeded job already existed and the caller should attach to it).
	StartIfIdle(ctx context.Context, documentHash string) (job *domain.ExtractionJob, started bool, err error)

	// Get returns the job row, or (nil, nil) when no job exists for the
	// document (the not-started state).
	Get(ctx context.Context, documentHash string) (*domain.ExtractionJob, error)

	// Complete transitions running -> succeeded with the stored result.
	// It is a no-op if the job is not running.
	Complete(ctx context.Context, documentHash string, result []byte) error

	// Fail transitions running -> failed with the error detail.
	// It is a no-op if the job is not running.
	Fail(ctx context.Context, documentHash string, detail string) error

	// Delete removes the job row, invalidating a cached result.
	Delete(ctx context.Context, documentHash string) error
}
