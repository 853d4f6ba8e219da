package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dealdesk/dealdesk/internal/common"
	"github.com/dealdesk/dealdesk/internal/extract"
	"github.com/dealdesk/dealdesk/internal/merge"
	"github.com/dealdesk/dealdesk/internal/mls"
)

// MLSLookupResponse is the response body for GET /api/mls.
type MLSLookupResponse struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	MLS       string          `json:"mls"`
	Timestamp time.Time       `json:"timestamp"`
}

func (s *Server) handleMLSLookup(c echo.Context) error {
	mlsNumber := c.QueryParam("mls")
	if mlsNumber == "" {
		return common.BadRequestError("MLS number is required")
	}

	data, err := s.deps.Listings.LookupByMLS(c.Request().Context(), mlsNumber)
	if err != nil {
		s.logger.Error("mls lookup failed", "mls", mlsNumber, "error", err)
		return common.InternalError("Failed to fetch MLS data")
	}
	return c.JSON(http.StatusOK, MLSLookupResponse{
		Success:   true,
		Data:      data,
		MLS:       mlsNumber,
		Timestamp: time.Now().UTC(),
	})
}

// MLSPropertyRequest is the request body for POST /api/mls.
type MLSPropertyRequest struct {
	MLS string `json:"mls"`
}

// MLSPropertyResponse is the response body for POST /api/mls.
type MLSPropertyResponse struct {
	Success   bool            `json:"success"`
	Data      *mls.Listing    `json:"data"`
	RawData   json.RawMessage `json:"rawData"`
	MLS       string          `json:"mls"`
	ZPID      string          `json:"zpid"`
	Timestamp time.Time       `json:"timestamp"`
}

func (s *Server) handleMLSProperty(c echo.Context) error {
	var req MLSPropertyRequest
	if err := c.Bind(&req); err != nil {
		return common.BadRequestError("invalid request body")
	}
	if req.MLS == "" {
		return common.BadRequestError("MLS number is required")
	}

	listing, err := s.deps.Listings.PropertyByMLS(c.Request().Context(), req.MLS)
	if errors.Is(err, common.ErrNotFound) {
		return common.NotFoundError("Property not found for this MLS number")
	}
	if err != nil {
		s.logger.Error("mls property fetch failed", "mls", req.MLS, "error", err)
		return common.InternalError("Failed to fetch property data by MLS")
	}

	return c.JSON(http.StatusOK, MLSPropertyResponse{
		Success:   true,
		Data:      listing,
		RawData:   listing.Raw,
		MLS:       req.MLS,
		ZPID:      listing.ZPID,
		Timestamp: time.Now().UTC(),
	})
}

// ConflictRequest is the request body for POST /api/mls/conflicts. Both
// sides use the extraction field vocabulary.
type ConflictRequest struct {
	MLSData      extract.Fields `json:"mlsData"`
	DocumentData extract.Fields `json:"documentData"`
}

// ConflictResponse is the response body for POST /api/mls/conflicts.
type ConflictResponse struct {
	Conflicts []merge.Conflict `json:"conflicts"`
	Count     int              `json:"count"`
}

func (s *Server) handleMLSConflicts(c echo.Context) error {
	var req ConflictRequest
	if err := c.Bind(&req); err != nil {
		return common.BadRequestError("invalid request body")
	}
	if req.DocumentData == nil {
		return common.BadRequestError("documentData is required")
	}

	conflicts := merge.DetectConflicts(req.MLSData, req.DocumentData)
	return c.JSON(http.StatusOK, ConflictResponse{
		Conflicts: conflicts,
		Count:     len(conflicts),
	})
}
