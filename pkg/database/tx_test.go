package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeDB struct {
	PgxIface
	tx       *fakeTx
	beginErr error
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

func TestRunInTx_Commit(t *testing.T) {
	tx := &fakeTx{}
	tm := NewTxManager(&fakeDB{tx: tx})

	var got Querier
	err := tm.RunInTx(context.Background(), func(q Querier) error {
		got = q
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, tx, got)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	tx := &fakeTx{}
	tm := NewTxManager(&fakeDB{tx: tx})
	boom := errors.New("boom")

	err := tm.RunInTx(context.Background(), func(q Querier) error { return boom })

	require.ErrorIs(t, err, boom)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	tx := &fakeTx{}
	tm := NewTxManager(&fakeDB{tx: tx})

	assert.Panics(t, func() {
		_ = tm.RunInTx(context.Background(), func(q Querier) error { panic("boom") })
	})
	assert.True(t, tx.rolledBack)
}

func TestRunInTx_CommitFailure(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("serialization failure")}
	tm := NewTxManager(&fakeDB{tx: tx})

	err := tm.RunInTx(context.Background(), func(q Querier) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit transaction")
}

func TestRunInTx_BeginFailure(t *testing.T) {
	tm := NewTxManager(&fakeDB{beginErr: errors.New("pool closed")})
	called := false

	err := tm.RunInTx(context.Background(), func(q Querier) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}
