package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a stored deal document and its extraction output.
type Document struct {
	ID              uuid.UUID `json:"id"`
	TransactionID   uuid.UUID `json:"transaction_id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	OriginalName    string    `json:"original_name"`
	FilePath        string    `json:"file_path"`
	Size            int64     `json:"size"`
	MimeType        string    `json:"mime_type"`
	ParsedData      []byte    `json:"parsed_data,omitempty"`
	FieldsExtracted int       `json:"fields_extracted"`
	UploadedAt      time.Time `json:"uploaded_at"`
}
