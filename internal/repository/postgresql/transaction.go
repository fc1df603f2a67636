package postgresql

import (
	"context"
	"fmt"

	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
)

type txCtxKey struct{}

// WithTransaction executes fn inside a database transaction. The transaction
// is stored on the context so repositories picked up via GetQuerier join it.
func WithTransaction(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txCtx := WithQuerier(ctx, tx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// WithQuerier binds an explicit querier to the context. WithTransaction uses
// it to join repositories to an open transaction; tests use it to substitute
// a mock pool.
func WithQuerier(ctx context.Context, q database.Querier) context.Context {
	return context.WithValue(ctx, txCtxKey{}, q)
}

// GetQuerier returns the querier bound to ctx, or the pool.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if q, ok := ctx.Value(txCtxKey{}).(database.Querier); ok {
		return q
	}
	return db.Pool
}
