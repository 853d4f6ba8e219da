package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dealdesk/dealdesk/internal/entity"
)

type fakeTxRepo struct {
	txs []*entity.Transaction
	err error
}

func (f *fakeTxRepo) GetTransaction(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTxRepo) ListTransactions(context.Context) ([]*entity.Transaction, error) {
	return f.txs, f.err
}
func (f *fakeTxRepo) CreateTransaction(context.Context, *entity.Transaction) error {
	return errors.New("not implemented")
}
func (f *fakeTxRepo) UpdateTransaction(context.Context, *entity.Transaction) error {
	return errors.New("not implemented")
}

func TestExportTransactionsXLSX(t *testing.T) {
	price := 750000.0
	beds := 4
	closing := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeTxRepo{txs: []*entity.Transaction{{
		ID:              uuid.New(),
		Status:          "ACTIVE",
		PropertyAddress: "123 Main St, Anytown, CA 90210",
		City:            "Anytown",
		State:           "CA",
		ZipCode:         "90210",
		Price:           &price,
		Bedrooms:        &beds,
		ClosingDate:     &closing,
		MLSNumber:       "A1234567",
	}}}

	svc := NewService(repo, nil)
	out, err := svc.ExportTransactionsXLSX(context.Background(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Property Address", rows[0][0])
	assert.Equal(t, "MLS Number", rows[0][15])

	assert.Equal(t, "123 Main St, Anytown, CA 90210", rows[1][0])
	assert.Equal(t, "Anytown", rows[1][1])
	assert.Equal(t, "750000", rows[1][5])
	assert.Equal(t, "2025-01-15", rows[1][9])
	assert.Equal(t, "A1234567", rows[1][15])
}

func TestExportTransactionsXLSXDateWindow(t *testing.T) {
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	repo := &fakeTxRepo{txs: []*entity.Transaction{
		{ID: uuid.New(), PropertyAddress: "123 Main St", ClosingDate: &jan},
		{ID: uuid.New(), PropertyAddress: "456 Oak Ave", ClosingDate: &jun},
		{ID: uuid.New(), PropertyAddress: "789 Pine Rd"},
	}}
	svc := NewService(repo, nil)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	out, err := svc.ExportTransactionsXLSX(context.Background(), &from, &to)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "456 Oak Ave", rows[1][0])
}

func TestExportTransactionsXLSXRepoError(t *testing.T) {
	svc := NewService(&fakeTxRepo{err: errors.New("db down")}, nil)
	_, err := svc.ExportTransactionsXLSX(context.Background(), nil, nil)
	assert.Error(t, err)
}
