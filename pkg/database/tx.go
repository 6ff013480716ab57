package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxManager runs a function inside one database transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(q Querier) error) error
}

type txManager struct {
	db PgxIface
}

func NewTxManager(db PgxIface) TxManager {
	return &txManager{db: db}
}

// RunInTx commits when fn returns nil and rolls back on error or panic.
func (tm *txManager) RunInTx(ctx context.Context, fn func(q Querier) error) (err error) {
	tx, err := tm.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.Background())
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(context.Background()); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
