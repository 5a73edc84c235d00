package transactions

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mavazidev/mavazi-backend/pkg/enums"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
	"github.com/mavazidev/mavazi-backend/pkg/pagination"
)

func setupTransactionsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, conn.Exec(`CREATE TABLE transaction_records (
  id TEXT PRIMARY KEY,
  transaction_code TEXT NOT NULL UNIQUE,
  amount_cents INTEGER NOT NULL,
  name TEXT NOT NULL,
  type TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	return conn
}

func TestRecord(t *testing.T) {
	svc, err := NewService(NewRepository(setupTransactionsTestDB(t)))
	require.NoError(t, err)

	record, err := svc.Record(context.Background(), "manual deposit", 2500, enums.TransactionTypeDeposit)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(record.TransactionCode, "TXN-"))
	assert.Equal(t, int64(2500), record.AmountCents)
	assert.Equal(t, enums.TransactionTypeDeposit, record.Type)

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.TransactionCode, records[0].TransactionCode)
}

func TestRecordRejectsNonPositiveAmount(t *testing.T) {
	svc, err := NewService(NewRepository(setupTransactionsTestDB(t)))
	require.NoError(t, err)

	_, err = svc.Record(context.Background(), "bad", 0, enums.TransactionTypeDeposit)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Record(context.Background(), "bad", -5, enums.TransactionTypeWithdrawal)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestListPageWalksLedger(t *testing.T) {
	svc, err := NewService(NewRepository(setupTransactionsTestDB(t)))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := svc.Record(context.Background(), fmt.Sprintf("entry %d", i), int64(100+i), enums.TransactionTypeDeposit)
		require.NoError(t, err)
	}

	first, err := svc.ListPage(context.Background(), pagination.Params{Limit: 3})
	require.NoError(t, err)
	require.Len(t, first.Records, 3)
	require.NotEmpty(t, first.NextCursor)

	second, err := svc.ListPage(context.Background(), pagination.Params{Limit: 3, Cursor: first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Records, 2)
	assert.Empty(t, second.NextCursor)

	// the two pages cover the ledger without overlap
	seen := map[string]bool{}
	for _, r := range append(first.Records, second.Records...) {
		assert.False(t, seen[r.TransactionCode])
		seen[r.TransactionCode] = true
	}
	assert.Len(t, seen, 5)
}

func TestListPageRejectsGarbageCursor(t *testing.T) {
	svc, err := NewService(NewRepository(setupTransactionsTestDB(t)))
	require.NoError(t, err)

	_, err = svc.ListPage(context.Background(), pagination.Params{Cursor: "not-base64!"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestRecordRejectsUnknownType(t *testing.T) {
	svc, err := NewService(NewRepository(setupTransactionsTestDB(t)))
	require.NoError(t, err)

	_, err = svc.Record(context.Background(), "bad", 100, enums.TransactionType("transfer"))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
