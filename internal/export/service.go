package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dealdesk/dealdesk/internal/entity"
	"github.com/dealdesk/dealdesk/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	txRepo repository.TransactionRepository
	logger *slog.Logger
}

func NewService(txRepo repository.TransactionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{txRepo: txRepo, logger: logger}
}

// ExportTransactionsXLSX returns an XLSX workbook (as bytes) listing
// transactions with their key deal fields, filtered by closing date.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all transactions.
func (s *Service) ExportTransactionsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	all, err := s.txRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	var txs []*entity.Transaction
	for _, tx := range all {
		if !inWindow(tx.ClosingDate, fromDate, toDate) {
			continue
		}
		txs = append(txs, tx)
	}

	f := excelize.NewFile()
	const sheet = "Transactions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Property Address",
		"City",
		"State",
		"Zip",
		"Status",
		"Price",
		"Commission %",
		"Buyer",
		"Seller",
		"Closing Date",
		"Property Type",
		"Beds",
		"Baths",
		"Sq Ft",
		"Year Built",
		"MLS Number",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, tx := range txs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, tx.PropertyAddress)
		write(2, tx.City)
		write(3, tx.State)
		write(4, tx.ZipCode)
		write(5, tx.Status)
		if tx.Price != nil {
			write(6, *tx.Price)
		}
		if tx.CommissionPercent != nil {
			write(7, *tx.CommissionPercent)
		}
		write(8, tx.ClientName)
		write(9, tx.SellerName)
		if tx.ClosingDate != nil {
			write(10, tx.ClosingDate.Format("2006-01-02"))
		}
		write(11, tx.PropertyType)
		if tx.Bedrooms != nil {
			write(12, *tx.Bedrooms)
		}
		if tx.Bathrooms != nil {
			write(13, *tx.Bathrooms)
		}
		if tx.SquareFootage != nil {
			write(14, *tx.SquareFootage)
		}
		if tx.YearBuilt != nil {
			write(15, *tx.YearBuilt)
		}
		write(16, tx.MLSNumber)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40) // address
	_ = f.SetColWidth(sheet, "B", "B", 18) // city
	_ = f.SetColWidth(sheet, "F", "F", 14) // price
	_ = f.SetColWidth(sheet, "H", "I", 24) // parties
	_ = f.SetColWidth(sheet, "J", "J", 14) // closing
	_ = f.SetColWidth(sheet, "P", "P", 16) // mls

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(txs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// inWindow reports whether a closing date falls inside the requested window.
// Transactions without a closing date are excluded once a window is set.
func inWindow(closing, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	if closing == nil {
		return false
	}
	d := time.Date(closing.Year(), closing.Month(), closing.Day(), 0, 0, 0, 0, time.UTC)
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}
