package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealdesk/dealdesk/internal/common"
	"github.com/dealdesk/dealdesk/internal/entity"
)

type TransactionRepository interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	ListTransactions(ctx context.Context) ([]*entity.Transaction, error)
	CreateTransaction(ctx context.Context, tx *entity.Transaction) error
	UpdateTransaction(ctx context.Context, tx *entity.Transaction) error
}

type transactionRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTransactionRepository(pool *pgxpool.Pool, logger *slog.Logger) TransactionRepository {
	return &transactionRepository{pool: pool, logger: logger}
}

const transactionColumns = `
	id, status, property_address,
	COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip_code, ''),
	price, commission_percent,
	COALESCE(client_name, ''), COALESCE(seller_name, ''),
	closing_date, contract_date, listing_date,
	COALESCE(property_type, ''), bedrooms, bathrooms, square_footage,
	COALESCE(lot_size, ''), year_built, COALESCE(mls_number, ''),
	created_at, updated_at`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := row.Scan(
		&tx.ID, &tx.Status, &tx.PropertyAddress,
		&tx.Address, &tx.City, &tx.State, &tx.ZipCode,
		&tx.Price, &tx.CommissionPercent,
		&tx.ClientName, &tx.SellerName,
		&tx.ClosingDate, &tx.ContractDate, &tx.ListingDate,
		&tx.PropertyType, &tx.Bedrooms, &tx.Bathrooms, &tx.SquareFootage,
		&tx.LotSize, &tx.YearBuilt, &tx.MLSNumber,
		&tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT`+transactionColumns+` FROM transactions WHERE id = $1`, id)
	tx, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get transaction", "transaction_id", id, "error", err)
		return nil, err
	}
	return tx, nil
}

func (r *transactionRepository) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT`+transactionColumns+` FROM transactions ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error("failed to list transactions", "error", err)
		return nil, err
	}
	defer rows.Close()

	var result []*entity.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, tx *entity.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.Status == "" {
		tx.Status = "ACTIVE"
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO transactions (
			id, status, property_address, address, city, state, zip_code,
			price, commission_percent, client_name, seller_name,
			closing_date, contract_date, listing_date, property_type,
			bedrooms, bathrooms, square_footage, lot_size, year_built, mls_number,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, now(), now()
		)`,
		tx.ID, tx.Status, tx.PropertyAddress, tx.Address, tx.City, tx.State, tx.ZipCode,
		tx.Price, tx.CommissionPercent, tx.ClientName, tx.SellerName,
		tx.ClosingDate, tx.ContractDate, tx.ListingDate, tx.PropertyType,
		tx.Bedrooms, tx.Bathrooms, tx.SquareFootage, tx.LotSize, tx.YearBuilt, tx.MLSNumber,
	)
	if err != nil {
		r.logger.Error("failed to create transaction", "transaction_id", tx.ID, "error", err)
	}
	return err
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, tx *entity.Transaction) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE transactions SET
			status = $2, property_address = $3, address = $4, city = $5,
			state = $6, zip_code = $7, price = $8, commission_percent = $9,
			client_name = $10, seller_name = $11, closing_date = $12,
			contract_date = $13, listing_date = $14, property_type = $15,
			bedrooms = $16, bathrooms = $17, square_footage = $18,
			lot_size = $19, year_built = $20, mls_number = $21,
			updated_at = now()
		WHERE id = $1`,
		tx.ID, tx.Status, tx.PropertyAddress, tx.Address, tx.City,
		tx.State, tx.ZipCode, tx.Price, tx.CommissionPercent,
		tx.ClientName, tx.SellerName, tx.ClosingDate,
		tx.ContractDate, tx.ListingDate, tx.PropertyType,
		tx.Bedrooms, tx.Bathrooms, tx.SquareFootage,
		tx.LotSize, tx.YearBuilt, tx.MLSNumber,
	)
	if err != nil {
		r.logger.Error("failed to update transaction", "transaction_id", tx.ID, "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", tx.ID, common.ErrNotFound)
	}
	return nil
}
