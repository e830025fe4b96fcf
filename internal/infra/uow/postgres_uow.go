package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"place-booking/internal/infra"
	"place-booking/internal/infra/repository"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/pkg/config"
	"place-booking/internal/pkg/errs"
	"place-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
	cfg  config.BookingConfig
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
		cfg:  cfg.Booking,
	}
}

// Within runs fn in a read-committed transaction under the booking retry
// policy (see Run).
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	options := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	return Run(ctx, u.cfg, func(ctx context.Context) error {
		return u.runOnce(ctx, options, fn)
	})
}

// Avoids defer accumulation in the retry loop so each attempt releases its
// connection before the next begins.
func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	tx := &pgTx{dbtx: pgxTx, q: u.q}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = infra.WrapRepoErr("commit", errs.Mark(err, errTransactionCommit))
	}

	// Rollback must outlive an expired attempt deadline.
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()
	if rollbackErr := pgxTx.Rollback(rbCtx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}
	return err
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	bookingRepo  shared.BookingRepository
	taxonomyRepo shared.TaxonomyRepository
	eventRepo    shared.EventRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Taxonomy() shared.TaxonomyRepository {
	if t.taxonomyRepo == nil {
		t.taxonomyRepo = repository.NewTaxonomyRepository(t.q, t.dbtx)
	}
	return t.taxonomyRepo
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.q, t.dbtx)
	}
	return t.eventRepo
}
