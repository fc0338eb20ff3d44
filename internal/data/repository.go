package data

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tracking_service/internal/service"
)

// Querier is the subset of pgxpool.Pool and pgx.Tx used by the repository,
// compatible with pgxscan and pgxmock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository runs every query of the service against a Querier. Outside of
// tests the Querier is always the transaction opened by Store.Begin.
type Repository struct {
	db Querier
}

func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

type beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

type Store struct {
	db beginner
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{db: pool}
}

func (s *Store) Begin(ctx context.Context) (service.Tx, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	return &TxRepository{Repository: NewRepository(tx), tx: tx}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

type TxRepository struct {
	*Repository
	tx pgx.Tx
}

func (r *TxRepository) Commit(ctx context.Context) error {
	return r.tx.Commit(ctx)
}

// Rollback is deferred by every operation, so it is a no-op after Commit.
func (r *TxRepository) Rollback(ctx context.Context) error {
	err := r.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}
