package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coinflip/internal/model"
	"coinflip/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.PendingRepository = (*PendingRepositoryImpl)(nil)

// PendingRepositoryImpl is the PostgreSQL implementation of PendingRepository
type PendingRepositoryImpl struct {
	*TransactionManager
}

func NewPendingRepository(pool *pgxpool.Pool) repository.PendingRepository {
	return &PendingRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// Put inserts a pending wager
func (r *PendingRepositoryImpl) Put(ctx context.Context, wager *model.Wager) error {
	query := `
        INSERT INTO pending_wagers (request_id, player, choice, deposit, created_at)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.getExecutor().Exec(ctx, query, wager.RequestID, wager.Player, int16(wager.Choice), wager.Deposit, wager.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateRequest
		}
		return fmt.Errorf("failed to insert pending wager: %w", err)
	}
	return nil
}

// Take locks the row, skipping it when another resolver already holds it,
// then deletes it. A skipped or missing row is ErrWagerNotFound.
func (r *PendingRepositoryImpl) Take(ctx context.Context, requestID string) (*model.Wager, error) {
	var wager *model.Wager

	err := r.WithTransaction(ctx, func(tx pgx.Tx) error {
		query := `
            SELECT request_id, player, choice, deposit, created_at
            FROM pending_wagers WHERE request_id = $1
            FOR UPDATE SKIP LOCKED`

		w, err := scanWager(r.getExecutor(tx).QueryRow(ctx, query, requestID))
		if err != nil {
			return err
		}

		if _, err := r.getExecutor(tx).Exec(ctx, `DELETE FROM pending_wagers WHERE request_id = $1`, requestID); err != nil {
			return fmt.Errorf("failed to delete pending wager: %w", err)
		}
		wager = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wager, nil
}

// ListExpired returns the oldest wagers created before the given time
func (r *PendingRepositoryImpl) ListExpired(ctx context.Context, before time.Time, limit int) ([]*model.Wager, error) {
	query := `
        SELECT request_id, player, choice, deposit, created_at
        FROM pending_wagers
        WHERE created_at < $1
        ORDER BY created_at
        LIMIT $2`

	rows, err := r.getExecutor().Query(ctx, query, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired wagers: %w", err)
	}
	defer rows.Close()

	var wagers []*model.Wager
	for rows.Next() {
		w, err := scanWager(rows)
		if err != nil {
			return nil, err
		}
		wagers = append(wagers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expired wagers: %w", err)
	}
	return wagers, nil
}

func scanWager(row pgx.Row) (*model.Wager, error) {
	var (
		w      model.Wager
		choice int16
	)
	err := row.Scan(&w.RequestID, &w.Player, &choice, &w.Deposit, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWagerNotFound
		}
		return nil, fmt.Errorf("failed to scan pending wager: %w", err)
	}
	w.Choice = model.CoinSide(choice)
	return &w, nil
}
