package repository

import (
	"context"
	"testing"
	"time"

	"github.com/cryptex-app/exchange-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExchangeTxn(userID string) *domain.Transaction {
	return &domain.Transaction{
		UserID:       userID,
		Kind:         domain.KindExchange,
		FromCurrency: "BTC",
		ToCurrency:   "ETH",
		FromAmount:   decimal.NewFromFloat(0.5),
		ToAmount:     decimal.NewFromFloat(10.2),
		Rate:         decimal.NewFromFloat(20.4),
		Fee:          decimal.NewFromFloat(0.0005),
	}
}

func TestTransactionCreate(t *testing.T) {
	repo := NewDefaultTransactionRepository(setupTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, newExchangeTxn(uuid.New().String()))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	txn, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, txn.Status)
	assert.Equal(t, domain.KindExchange, txn.Kind)
	assert.True(t, txn.FromAmount.Equal(decimal.NewFromFloat(0.5)))
	assert.Nil(t, txn.CompletedAt)
}

func TestTransactionCreateDuplicateID(t *testing.T) {
	repo := NewDefaultTransactionRepository(setupTestDB(t))
	ctx := context.Background()

	txn := newExchangeTxn(uuid.New().String())
	txn.ID = uuid.New().String()
	_, err := repo.Create(ctx, txn)
	require.NoError(t, err)

	dup := newExchangeTxn(txn.UserID)
	dup.ID = txn.ID
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
}

func TestTransactionGetByIDNotFound(t *testing.T) {
	repo := NewDefaultTransactionRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestTransactionMarkCompleted(t *testing.T) {
	repo := NewDefaultTransactionRepository(setupTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, newExchangeTxn(uuid.New().String()))
	require.NoError(t, err)

	require.NoError(t, repo.MarkCompleted(ctx, id))

	txn, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, txn.Status)
	assert.NotNil(t, txn.CompletedAt)
}

func TestTransactionMarkFailedStoresReason(t *testing.T) {
	repo := NewDefaultTransactionRepository(setupTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, newExchangeTxn(uuid.New().String()))
	require.NoError(t, err)

	require.NoError(t, repo.MarkFailed(ctx, id, "insufficient funds"))

	txn, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, txn.Status)
	assert.Equal(t, "insufficient funds", txn.FailureReason)
}

func TestTransactionTerminalTransitionOnce(t *testing.T) {
	repo := NewDefaultTransactionRepository(setupTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, newExchangeTxn(uuid.New().String()))
	require.NoError(t, err)
	require.NoError(t, repo.MarkCompleted(ctx, id))

	// Terminal records do not transition again.
	assert.ErrorIs(t, repo.MarkFailed(ctx, id, "late failure"), domain.ErrInvalidTransition)
	assert.ErrorIs(t, repo.MarkCompleted(ctx, id), domain.ErrInvalidTransition)

	txn, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, txn.Status)
}

func TestTransactionMarkMissingNotFound(t *testing.T) {
	repo := NewDefaultTransactionRepository(setupTestDB(t))

	assert.ErrorIs(t, repo.MarkCompleted(context.Background(), uuid.New().String()), domain.ErrTransactionNotFound)
}

func TestTransactionListByUserID(t *testing.T) {
	repo := NewDefaultTransactionRepository(setupTestDB(t))
	ctx := context.Background()
	userID := uuid.New().String()

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i := 0; i < 5; i++ {
		txn := newExchangeTxn(userID)
		txn.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, err := repo.Create(ctx, txn)
		require.NoError(t, err)
	}
	// Another user's record must not leak into the listing.
	_, err := repo.Create(ctx, newExchangeTxn(uuid.New().String()))
	require.NoError(t, err)

	txns, total, err := repo.ListByUserID(ctx, userID, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, txns, 3)
	for i := 1; i < len(txns); i++ {
		assert.False(t, txns[i].CreatedAt.After(txns[i-1].CreatedAt), "records must be most recent first")
	}

	rest, total, err := repo.ListByUserID(ctx, userID, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, rest, 2)
}

func TestTransactionListTieBreakByID(t *testing.T) {
	repo := NewDefaultTransactionRepository(setupTestDB(t))
	ctx := context.Background()
	userID := uuid.New().String()

	createdAt := time.Now().Truncate(time.Second)
	ids := []string{"00000000-0000-0000-0000-00000000000a", "00000000-0000-0000-0000-00000000000b"}
	for _, id := range ids {
		txn := newExchangeTxn(userID)
		txn.ID = id
		txn.CreatedAt = createdAt
		_, err := repo.Create(ctx, txn)
		require.NoError(t, err)
	}

	txns, _, err := repo.ListByUserID(ctx, userID, 10, 0)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, ids[1], txns[0].ID)
	assert.Equal(t, ids[0], txns[1].ID)
}

func TestTransactionFailStuckProcessing(t *testing.T) {
	repo := NewDefaultTransactionRepository(setupTestDB(t))
	ctx := context.Background()
	userID := uuid.New().String()

	stale := newExchangeTxn(userID)
	stale.CreatedAt = time.Now().Add(-10 * time.Minute)
	staleID, err := repo.Create(ctx, stale)
	require.NoError(t, err)

	fresh := newExchangeTxn(userID)
	freshID, err := repo.Create(ctx, fresh)
	require.NoError(t, err)

	done := newExchangeTxn(userID)
	done.CreatedAt = time.Now().Add(-10 * time.Minute)
	doneID, err := repo.Create(ctx, done)
	require.NoError(t, err)
	require.NoError(t, repo.MarkCompleted(ctx, doneID))

	swept, err := repo.FailStuckProcessing(ctx, time.Now().Add(-5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)

	staleTxn, err := repo.GetByID(ctx, staleID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, staleTxn.Status)
	assert.Equal(t, "processing timeout", staleTxn.FailureReason)

	freshTxn, err := repo.GetByID(ctx, freshID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, freshTxn.Status)

	doneTxn, err := repo.GetByID(ctx, doneID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, doneTxn.Status)
}
