package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"docsage/internal/domain"
	"docsage/internal/port"
)

type extractionJobRepo struct {
	db *sqlx.DB
}

var _ port.ExtractionJobRepository = (*extractionJobRepo)(nil)

// NewExtractionJobRepo creates a PostgreSQL-backed ExtractionJobRepository.
func NewExtractionJobRepo(db *sqlx.DB) *extractionJobRepo {
	return &extractionJobRepo{db: db}
}

const jobColumns = `document_hash, status, result, error_detail, started_at, completed_at`

// StartIfIdle performs the create-if-absent-or-failed transition as a single
// conditional write. The ON CONFLICT update only fires when the existing job
// is failed, so a running or succeeded job can never be clobbered; losing
// writers get no row back and attach to the current job instead.
func (r *extractionJobRepo) StartIfIdle(ctx context.Context, documentHash string) (*domain.ExtractionJob, bool, error) {
	query := `
		INSERT INTO extraction_jobs (document_hash, status, started_at)
		VALUES ($1, 'running', NOW())
		ON CONFLICT (document_hash) DO UPDATE
		SET status = 'running',
		    result = NULL,
		    error_detail = '',
		    started_at = NOW(),
		    completed_at = NULL
		WHERE extraction_jobs.status = 'failed'
		RETURNING ` + jobColumns

	// The conditional write and the attach read are separate statements, so a
	// concurrent invalidation or re-insert can slip between them; retry the
	// pair instead of surfacing the transient gap as an error.
	for attempt := 0; attempt < 3; attempt++ {
		var job domain.ExtractionJob
		err := r.db.GetContext(ctx, &job, query, documentHash)
		if err == nil {
			return &job, true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, false, fmt.Errorf("%w: starting extraction job: %v", domain.ErrStorage, err)
		}

		// Lost the conditional write: a running or succeeded job already
		// exists. Attach to it.
		existing, err := r.Get(ctx, documentHash)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}
		// The row vanished between the two statements (deleted by an
		// invalidation); take another pass at the insert.
	}
	return nil, false, fmt.Errorf("%w: starting extraction job for %s: row kept vanishing", domain.ErrStorage, documentHash)
}

func (r *extractionJobRepo) Get(ctx context.Context, documentHash string) (*domain.ExtractionJob, error) {
	var job domain.ExtractionJob
	query := `SELECT ` + jobColumns + ` FROM extraction_jobs WHERE document_hash = $1`

	if err := r.db.GetContext(ctx, &job, query, documentHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: getting extraction job: %v", domain.ErrStorage, err)
	}
	return &job, nil
}

func (r *extractionJobRepo) Complete(ctx context.Context, documentHash string, result []byte) error {
	query := `
		UPDATE extraction_jobs
		SET status = 'succeeded', result = $2, completed_at = NOW()
		WHERE document_hash = $1 AND status = 'running'`

	if _, err := r.db.ExecContext(ctx, query, documentHash, result); err != nil {
		return fmt.Errorf("%w: completing extraction job: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *extractionJobRepo) Fail(ctx context.Context, documentHash string, detail string) error {
	query := `
		UPDATE extraction_jobs
		SET status = 'failed', error_detail = $2, completed_at = NOW()
		WHERE document_hash = $1 AND status = 'running'`

	if _, err := r.db.ExecContext(ctx, query, documentHash, detail); err != nil {
		return fmt.Errorf("%w: failing extraction job: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *extractionJobRepo) Delete(ctx context.Context, documentHash string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM extraction_jobs WHERE document_hash = $1`, documentHash); err != nil {
		return fmt.Errorf("%w: deleting extraction job: %v", domain.ErrStorage, err)
	}
	return nil
}
