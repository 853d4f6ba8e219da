package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dealdesk/dealdesk/internal/common"
	"github.com/dealdesk/dealdesk/internal/entity"
)

func (s *Server) handleListTransactions(c echo.Context) error {
	txs, err := s.deps.Transactions.ListTransactions(c.Request().Context())
	if err != nil {
		return common.InternalError("Failed to list transactions")
	}
	return c.JSON(http.StatusOK, txs)
}

func (s *Server) handleGetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.BadRequestError("Invalid transaction ID")
	}
	tx, err := s.deps.Transactions.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return common.NotFoundError("Transaction not found")
	}
	return c.JSON(http.StatusOK, tx)
}

// CreateTransactionRequest is the request body for POST /api/transactions.
type CreateTransactionRequest struct {
	PropertyAddress string `json:"propertyAddress"`
	Status          string `json:"status"`
	MLSNumber       string `json:"mlsNumber"`
}

func (s *Server) handleCreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return common.BadRequestError("invalid request body")
	}
	if req.PropertyAddress == "" {
		return common.BadRequestError("propertyAddress is required")
	}

	tx := &entity.Transaction{
		PropertyAddress: req.PropertyAddress,
		Status:          req.Status,
		MLSNumber:       req.MLSNumber,
	}
	if err := s.deps.Transactions.CreateTransaction(c.Request().Context(), tx); err != nil {
		return common.InternalError("Failed to create transaction")
	}
	return c.JSON(http.StatusCreated, tx)
}

func (s *Server) handleExportTransactions(c echo.Context) error {
	from, err := parseDateParam(c.QueryParam("from"))
	if err != nil {
		return common.BadRequestError("invalid from date, expected YYYY-MM-DD")
	}
	to, err := parseDateParam(c.QueryParam("to"))
	if err != nil {
		return common.BadRequestError("invalid to date, expected YYYY-MM-DD")
	}

	out, err := s.deps.Exporter.ExportTransactionsXLSX(c.Request().Context(), from, to)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return common.InternalError("Failed to export transactions")
	}

	filename := "transactions_" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
}

func parseDateParam(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
