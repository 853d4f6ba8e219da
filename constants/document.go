package constants

import (
	"path/filepath"
	"strings"
)

// Document type labels stored on document records.
const (
	DocTypeContract    = "CONTRACT"
	DocTypeDisclosure  = "DISCLOSURE"
	DocTypeInspection  = "INSPECTION"
	DocTypeAppraisal   = "APPRAISAL"
	DocTypePDF         = "PDF"
	DocTypeDocument    = "DOCUMENT"
	DocTypeSpreadsheet = "SPREADSHEET"
	DocTypeOther       = "OTHER"
)

// Formats the conversion layer understands.
const (
	PDF         = "PDF"
	WORD        = "WORD"
	SPREADSHEET = "SPREADSHEET"
)

// AllowedMIMETypes holds the upload MIME types accepted by the API.
var AllowedMIMETypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       {},
	"application/vnd.ms-excel": {},
}

// ParseableMIMETypes holds the subset of upload types the extraction
// engine can be run against. Spreadsheets are stored but never parsed.
var ParseableMIMETypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/msword": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a conversion format.
// Unknown extensions map to "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "doc", "docx":
		return WORD
	case "xls", "xlsx":
		return SPREADSHEET
	default:
		return ""
	}
}

// DocumentTypeFromFilename guesses a document type label from a filename,
// preferring keyword hints over the bare extension.
func DocumentTypeFromFilename(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "contract"):
		return DocTypeContract
	case strings.Contains(lower, "disclosure"):
		return DocTypeDisclosure
	case strings.Contains(lower, "inspection"):
		return DocTypeInspection
	case strings.Contains(lower, "appraisal"):
		return DocTypeAppraisal
	}
	switch NormalizeExt(filepath.Ext(name)) {
	case "pdf":
		return DocTypePDF
	case "doc", "docx":
		return DocTypeDocument
	case "xls", "xlsx":
		return DocTypeSpreadsheet
	default:
		return DocTypeOther
	}
}
