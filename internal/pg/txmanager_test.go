package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type stubTx struct{ pgx.Tx }

func TestTxFromContext(t *testing.T) {
	assert.Nil(t, txFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), txKey{}, stubTx{})
	assert.NotNil(t, txFromContext(ctx))
}

func TestBegin_JoinsExistingTransaction(t *testing.T) {
	m := &txManager{}
	ctx := context.WithValue(context.Background(), txKey{}, stubTx{})

	var called bool
	err := m.Begin(ctx, func(inner context.Context) error {
		called = true
		assert.NotNil(t, txFromContext(inner))
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestBegin_JoinedTransactionPropagatesError(t *testing.T) {
	m := &txManager{}
	ctx := context.WithValue(context.Background(), txKey{}, stubTx{})

	wantErr := errors.New("some error")
	err := m.Begin(ctx, func(context.Context) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}
