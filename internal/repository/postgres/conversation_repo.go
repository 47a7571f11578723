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

type conversationRepo struct {
	db *sqlx.DB
}

var _ port.ConversationRepository = (*conversationRepo)(nil)

// NewConversationRepo creates a PostgreSQL-backed ConversationRepository.
func NewConversationRepo(db *sqlx.DB) *conversationRepo {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) Get(ctx context.Context, documentHash, question string) (*domain.Conversation, error) {
	var conv domain.Conversation
	query := `
		SELECT id, document_hash, question, answer, confidence, reasoning, source, verified, created_at
		FROM conversations
		WHERE document_hash = $1 AND question = $2`

	if err := r.db.GetContext(ctx, &conv, query, documentHash, question); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("%w: getting conversation: %v", domain.ErrStorage, err)
	}
	if err := conv.DecodeSource(); err != nil {
		return nil, fmt.Errorf("decoding conversation source: %w", err)
	}
	return &conv, nil
}

func (r *conversationRepo) Put(ctx context.Context, conv *domain.Conversation) error {
	if err := conv.EncodeSource(); err != nil {
		return fmt.Errorf("encoding conversation source: %w", err)
	}

	// Records are append-only: a concurrent writer for the same question
	// wins and this write becomes a no-op.
	query := `
		INSERT INTO conversations (
			id, document_hash, question, answer, confidence, reasoning, source, verified, created_at
		) VALUES (
			:id, :document_hash, :question, :answer, :confidence, :reasoning, :source, :verified, :created_at
		)
		ON CONFLICT (document_hash, question) DO NOTHING`

	if _, err := r.db.NamedExecContext(ctx, query, conv); err != nil {
		return fmt.Errorf("%w: inserting conversation: %v", domain.ErrStorage, err)
	}
	return nil
}

func (r *conversationRepo) List(ctx context.Context, documentHash string) ([]domain.Conversation, error) {
	query := `
		SELECT id, document_hash, question, answer, confidence, reasoning, source, verified, created_at
		FROM conversations
		WHERE document_hash = $1
		ORDER BY created_at ASC`

	convs := []domain.Conversation{}
	if err := r.db.SelectContext(ctx, &convs, query, documentHash); err != nil {
		return nil, fmt.Errorf("%w: listing conversations: %v", domain.ErrStorage, err)
	}
	for i := range convs {
		if err := convs[i].DecodeSource(); err != nil {
			return nil, fmt.Errorf("decoding conversation source: %w", err)
		}
	}
	return convs, nil
}

func (r *conversationRepo) Delete(ctx context.Context, documentHash, question string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM conversations WHERE document_hash = $1 AND question = $2`,
		documentHash, question)
	if err != nil {
		return fmt.Errorf("%w: deleting conversation: %v", domain.ErrStorage, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: deleting conversation: %v", domain.ErrStorage, err)
	}
	if affected == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

func (r *conversationRepo) DeleteAll(ctx context.Context, documentHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM conversations WHERE document_hash = $1`, documentHash)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting conversations: %v", domain.ErrStorage, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: deleting conversations: %v", domain.ErrStorage, err)
	}
	return affected, nil
}
