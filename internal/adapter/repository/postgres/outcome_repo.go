package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ntobe/ledger/internal/domain"
	"github.com/Ntobe/ledger/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// OutcomeRepository implements usecase.OutcomeRepository.
type OutcomeRepository struct {
	pool *pgxpool.Pool
}

// NewOutcomeRepository creates a new OutcomeRepository.
func NewOutcomeRepository(pool *pgxpool.Pool) *OutcomeRepository {
	return &OutcomeRepository{pool: pool}
}

// GetByTransferID retrieves the recorded outcome for a transfer ID.
func (r *OutcomeRepository) GetByTransferID(ctx context.Context, transferID string) (*domain.TransferOutcome, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, transfer_id, status, message, created_at
		 FROM transfer_outcomes
		 WHERE transfer_id = $1`,
		transferID,
	)

	var (
		outcome   domain.TransferOutcome
		status    string
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&outcome.ID, &outcome.TransferID, &status, &outcome.Message, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOutcomeNotFound
		}

		return nil, err
	}

	outcome.Status = domain.OutcomeStatus(status)
	outcome.CreatedAt = createdAt.Time

	return &outcome, nil
}

// Create records the outcome within a transaction. The unique index on
// transfer_id arbitrates concurrent submissions of the same transfer:
// the loser gets domain.ErrDuplicateTransfer and its transaction rolls
// back in full.
func (r *OutcomeRepository) Create(ctx context.Context, tx usecase.Transaction, outcome *domain.TransferOutcome) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO transfer_outcomes (id, transfer_id, status, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		outcome.ID,
		outcome.TransferID,
		string(outcome.Status),
		outcome.Message,
		timeToPgTimestamptz(outcome.CreatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateTransfer
		}

		return err
	}

	return nil
}
