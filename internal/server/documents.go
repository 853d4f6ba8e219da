package server

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dealdesk/dealdesk/constants"
	"github.com/dealdesk/dealdesk/internal/common"
	"github.com/dealdesk/dealdesk/internal/entity"
	"github.com/dealdesk/dealdesk/internal/extract"
	"github.com/dealdesk/dealdesk/internal/merge"
)

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// spreadsheetNote is stored as parsed data for uploads the engine never
// parses.
const spreadsheetNote = `{"message":"Spreadsheet uploaded - manual review required"}`

// UploadResponse is the response body for POST /api/documents/upload.
type UploadResponse struct {
	Success            bool            `json:"success"`
	Document           *entity.Document `json:"document"`
	ParsedData         extract.Fields  `json:"parsedData,omitempty"`
	TransactionUpdated bool            `json:"transactionUpdated"`
	ExtractedText      string          `json:"extractedText"`
	FileInfo           FileInfo        `json:"fileInfo"`
}

type FileInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func (s *Server) handleUploadDocument(c echo.Context) error {
	ctx := c.Request().Context()

	fh, err := c.FormFile("file")
	if err != nil {
		return common.BadRequestError("No file uploaded")
	}
	transactionID, err := uuid.Parse(c.FormValue("transactionId"))
	if err != nil {
		return common.BadRequestError("Transaction ID is required")
	}

	mimeType := fh.Header.Get("Content-Type")
	if _, ok := constants.AllowedMIMETypes[mimeType]; !ok {
		return common.BadRequestError("Invalid file type. Only PDF, Word, and Excel documents are allowed.")
	}
	if fh.Size > s.cfg.MaxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File exceeds the %d byte upload limit", s.cfg.MaxUploadBytes))
	}

	tx, err := s.deps.Transactions.GetTransaction(ctx, transactionID)
	if err != nil {
		return common.NotFoundError("Transaction not found")
	}

	path, err := s.saveUpload(fh)
	if err != nil {
		s.logger.Error("upload save failed", "file", fh.Filename, "error", err)
		return common.InternalError("Failed to store uploaded file")
	}

	// Parse failures are not fatal: the file is kept and the document
	// recorded without extraction output.
	var (
		fields        extract.Fields
		extractedText string
		parsedData    []byte
	)
	if _, parseable := constants.ParseableMIMETypes[mimeType]; parseable {
		if res, err := s.deps.Converter.Convert(ctx, path); err != nil {
			s.logger.Error("conversion failed", "file", fh.Filename, "error", err)
		} else {
			extractedText = res.Text
			fields = extract.Extract(res.Text)
			if len(fields) > 0 {
				if err := extract.ValidateFields(fields); err != nil {
					s.logger.Error("extracted fields failed validation", "file", fh.Filename, "error", err)
					fields = nil
				} else if parsedData, err = json.Marshal(fields); err != nil {
					return common.InternalError("Failed to encode parsed data")
				}
			}
		}
	} else {
		parsedData = []byte(spreadsheetNote)
	}

	docType := c.FormValue("type")
	if docType == "" {
		docType = constants.DocumentTypeFromFilename(fh.Filename)
	}
	title := c.FormValue("title")
	if title == "" {
		title = fh.Filename
	}

	doc := &entity.Document{
		TransactionID:   transactionID,
		Title:           title,
		Type:            docType,
		OriginalName:    fh.Filename,
		FilePath:        path,
		Size:            fh.Size,
		MimeType:        mimeType,
		ParsedData:      parsedData,
		FieldsExtracted: fields.Count(),
	}
	if err := s.deps.Documents.CreateDocument(ctx, doc); err != nil {
		return common.InternalError("Failed to save document")
	}

	updated := false
	if fields.Count() > 0 {
		if applied := merge.FillEmpty(tx, fields); len(applied) > 0 {
			if err := s.deps.Transactions.UpdateTransaction(ctx, tx); err != nil {
				s.logger.Error("transaction update failed", "transaction_id", tx.ID, "error", err)
			} else {
				updated = true
				s.logger.Info("transaction fields filled",
					"transaction_id", tx.ID, "fields", applied)
			}
		}
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Success:            true,
		Document:           doc,
		ParsedData:         fields,
		TransactionUpdated: updated,
		ExtractedText:      clip(extractedText, 500),
		FileInfo: FileInfo{
			Name:       fh.Filename,
			Size:       fh.Size,
			Type:       mimeType,
			UploadedAt: time.Now().UTC(),
		},
	})
}

// ParseResponse is the response body for POST /api/documents/parse.
type ParseResponse struct {
	Success         bool           `json:"success"`
	ExtractedData   extract.Fields `json:"extractedData"`
	ExtractedText   string         `json:"extractedText"`
	FieldsExtracted int            `json:"fieldsExtracted"`
	FileName        string         `json:"fileName"`
	FileSize        int64          `json:"fileSize"`
	ParsedAt        time.Time      `json:"parsedAt"`
}

// handleParseDocument runs extraction without persisting anything, so
// agents can preview what a document yields before attaching it.
func (s *Server) handleParseDocument(c echo.Context) error {
	ctx := c.Request().Context()

	fh, err := c.FormFile("file")
	if err != nil {
		return common.BadRequestError("No file provided")
	}
	mimeType := fh.Header.Get("Content-Type")
	if _, ok := constants.ParseableMIMETypes[mimeType]; !ok {
		return common.BadRequestError("Invalid file type. Only PDF and Word documents can be parsed.")
	}

	path, cleanup, err := s.saveTemp(fh)
	if err != nil {
		s.logger.Error("parse staging failed", "file", fh.Filename, "error", err)
		return common.InternalError("Failed to stage document for parsing")
	}
	defer cleanup()

	res, err := s.deps.Converter.Convert(ctx, path)
	if err != nil {
		s.logger.Error("conversion failed", "file", fh.Filename, "error", err)
		return common.InternalError("Failed to parse document content")
	}

	fields := extract.Extract(res.Text)
	if fields.Count() == 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error":      "No real estate data could be extracted from this document",
			"suggestion": "Please ensure the document contains property information like addresses, prices, or client names",
		})
	}

	return c.JSON(http.StatusOK, ParseResponse{
		Success:         true,
		ExtractedData:   fields,
		ExtractedText:   clip(res.Text, 1000),
		FieldsExtracted: fields.Count(),
		FileName:        fh.Filename,
		FileSize:        fh.Size,
		ParsedAt:        time.Now().UTC(),
	})
}

func (s *Server) handleGetDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.BadRequestError("Invalid document ID")
	}
	doc, err := s.deps.Documents.GetDocument(c.Request().Context(), id)
	if err != nil {
		return common.NotFoundError("Document not found")
	}
	return c.JSON(http.StatusOK, doc)
}

func (s *Server) handleListDocuments(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.BadRequestError("Invalid transaction ID")
	}
	docs, err := s.deps.Documents.ListDocuments(c.Request().Context(), id)
	if err != nil {
		return common.InternalError("Failed to list documents")
	}
	return c.JSON(http.StatusOK, docs)
}

// saveUpload writes a multipart file into the upload directory under a
// timestamped, sanitized name.
func (s *Server) saveUpload(fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), reUnsafeFilename.ReplaceAllString(fh.Filename, "_"))
	path := filepath.Join(s.cfg.UploadDir, name)
	if err := copyMultipart(fh, path); err != nil {
		return "", err
	}
	return path, nil
}

// saveTemp stages a multipart file for parse-only requests, keeping the
// original extension so conversion can dispatch on it.
func (s *Server) saveTemp(fh *multipart.FileHeader) (string, func(), error) {
	f, err := os.CreateTemp("", "parse-*"+filepath.Ext(fh.Filename))
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	f.Close()
	if err := copyMultipart(fh, path); err != nil {
		os.Remove(path)
		return "", nil, err
	}
	return path, func() { os.Remove(path) }, nil
}

func copyMultipart(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

// clip truncates to at most n bytes without splitting a multi-byte rune.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
