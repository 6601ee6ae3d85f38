package model

import "time"

// DocumentFile represents an uploaded document. Like planting photos, the
// file content lives in the session attachment cache and is never persisted;
// the record keeps the descriptive metadata so listings stay meaningful
// across restarts.
type DocumentFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UploadDate time.Time `json:"uploadDate"`
	FileName   string    `json:"fileName,omitempty"`
	FileSize   int64     `json:"fileSize,omitempty"`
}

// Document types.
const (
	DocumentTypeContract = "contract"
	DocumentTypePayroll  = "payroll"
	DocumentTypeOther    = "other"
)

// DocumentTypes lists all valid document types.
var DocumentTypes = []string{
	DocumentTypeContract,
	DocumentTypePayroll,
	DocumentTypeOther,
}
