// Package pipeline drives one uploaded document through the extraction
// sequence: upload, signed URL, OCR, field extraction, review, confirm. Each
// stage awaits its provider call to completion before the next begins; there
// is no retry anywhere.
package pipeline

import (
	"github.com/poflow/po-upload/constants"
	"github.com/poflow/po-upload/internal/llm"
)

// UploadJob is the unit of work for one user-submitted file. It is owned by
// a single Orchestrator for the duration of the upload and reset in place
// when a new file is selected.
type UploadJob struct {
	Filename    string
	ContentType string
	Content     []byte

	Stage     constants.Stage
	LastError string

	// remote identifiers from the OCR provider
	FileID      string
	DocumentURL string

	OCRText string
	Record  *llm.PurchaseOrderFields

	// storage side-step results
	StoredKey string
	StoredURL string

	FormVisible bool
}

// NewJob returns an idle job with no file attached.
func NewJob() *UploadJob {
	return &UploadJob{Stage: constants.StageIdle}
}

// Select attaches a new file and atomically clears every trace of the prior
// job before any network call can start: OCR text, extracted record, remote
// identifiers, errors, and form visibility never leak across files.
func (j *UploadJob) Select(filename, contentType string, content []byte) {
	*j = UploadJob{
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
		Stage:       constants.StageSelected,
	}
}

// HasFile reports whether a file is attached and submittable.
func (j *UploadJob) HasFile() bool {
	return j.Filename != "" && len(j.Content) > 0
}
