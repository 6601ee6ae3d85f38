package farm

import (
	"github.com/emruiz81/agriassist/internal/collection"
	"github.com/emruiz81/agriassist/internal/model"
	"github.com/emruiz81/agriassist/internal/storage"
	"github.com/emruiz81/agriassist/internal/validate"
)

// MaxDocumentSize is the upload size limit for document files.
const MaxDocumentSize = 5 * 1024 * 1024

// AcceptedDocumentMIME lists the accepted document media types: PDF, JPEG,
// PNG, and legacy/modern Word formats.
var AcceptedDocumentMIME = map[string]bool{
	"application/pdf":    true,
	"image/jpeg":         true,
	"image/png":          true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// DocumentSchema describes the document collection. The file payload itself
// never enters the record; an edit submission without replacement-file
// metadata carries the existing file's name, size and upload date over.
func DocumentSchema() collection.Schema[model.DocumentFile] {
	return collection.Schema[model.DocumentFile]{
		Key:    storage.KeyDocuments,
		ID:     func(d model.DocumentFile) string { return d.ID },
		WithID: func(d model.DocumentFile, id string) model.DocumentFile { d.ID = id; return d },
		Validate: func(d model.DocumentFile, _ collection.Mode) validate.Errors {
			v := validate.New()
			v.Require("name", d.Name, "name is required")
			v.Enum("type", d.Type, "invalid document type", model.DocumentTypes...)
			return v.Errors()
		},
		Merge: func(existing, submitted model.DocumentFile) model.DocumentFile {
			if submitted.FileName == "" {
				submitted.FileName = existing.FileName
				submitted.FileSize = existing.FileSize
				submitted.UploadDate = existing.UploadDate
			}
			return submitted
		},
	}
}

// ValidateDocumentSubmission checks the document fields and the uploaded file
// together so a form submission reports every problem in one pass.
func ValidateDocumentSubmission(d model.DocumentFile, file *Attachment, mode collection.Mode) validate.Errors {
	schema := DocumentSchema()
	return validate.Merge(schema.Validate(d, mode), ValidateDocumentUpload(file, mode))
}

// ValidateDocumentUpload checks an uploaded file against the document upload
// constraints. A file is required on create; on edit, a replacement is
// optional and the constraints apply only when one is supplied.
func ValidateDocumentUpload(file *Attachment, mode collection.Mode) validate.Errors {
	v := validate.New()
	if file == nil {
		if mode == collection.ModeCreate {
			v.Add("file", "file is required")
		}
		return v.Errors()
	}
	if len(file.Data) > MaxDocumentSize {
		v.Add("file", "file size must not exceed 5 MB")
	}
	if !AcceptedDocumentMIME[file.MIME] {
		v.Add("file", "file must be PDF, JPEG, PNG or Word")
	}
	return v.Errors()
}
