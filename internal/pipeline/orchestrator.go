package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/poflow/po-upload/constants"
	"github.com/poflow/po-upload/internal/llm"
	"github.com/poflow/po-upload/internal/objstore"
	"github.com/poflow/po-upload/internal/ocr"
)

// DefaultURLExpiryHours is passed to the signed-URL endpoint.
const DefaultURLExpiryHours = 24

// ProxyAPI is the credential-proxy surface the orchestrator drives. Client
// implements it over HTTP; tests substitute fakes.
type ProxyAPI interface {
	UploadFile(ctx context.Context, filename, contentType string, content []byte) (string, error)
	FileURL(ctx context.Context, fileID string, expiryHours int) (string, error)
	RunOCR(ctx context.Context, documentURL string) (ocr.Result, error)
	ExtractPO(ctx context.Context, extractedText string) (llm.PurchaseOrderFields, error)
}

// ObjectStore is the slice of the storage client the side-step needs.
type ObjectStore interface {
	ListProbe(ctx context.Context) error
	Upload(ctx context.Context, key string, content []byte, contentType string) error
	PublicURL(key string) string
}

// Orchestrator owns one UploadJob and moves it through the stages strictly
// sequentially. It is not safe for concurrent use; one orchestrator per
// upload session.
type Orchestrator struct {
	api    ProxyAPI
	store  ObjectStore // nil disables the storage side-step
	logger *slog.Logger

	expiryHours int
	now         func() time.Time

	job *UploadJob
}

func NewOrchestrator(api ProxyAPI, store ObjectStore, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		api:         api,
		store:       store,
		logger:      logger,
		expiryHours: DefaultURLExpiryHours,
		now:         time.Now,
		job:         NewJob(),
	}
}

// Job exposes the current job for display; callers must not mutate it.
func (o *Orchestrator) Job() *UploadJob { return o.job }

// Select attaches a new file, wiping all prior job state first.
func (o *Orchestrator) Select(filename, contentType string, content []byte) error {
	if !constants.IsAllowedExt(filepath.Ext(filename)) {
		return fmt.Errorf("unsupported file type: %s", filename)
	}
	o.job.Select(filename, contentType, content)
	o.logger.Info("pipeline.select", "filename", filename, "bytes", len(content))
	return nil
}

// Submit drives the job from Selected through upload, signed URL, and OCR.
// On success the job is OcrReady with assembled text, and the original file
// has been written to object storage. A storage failure does not undo the
// OCR result: the job stays OcrReady with the remediation message recorded,
// and the error is returned for display.
func (o *Orchestrator) Submit(ctx context.Context) error {
	if o.job.Stage != constants.StageSelected {
		return fmt.Errorf("submit requires a selected file (stage %s)", o.job.Stage)
	}

	o.job.Stage = constants.StageUploading
	fileID, err := o.api.UploadFile(ctx, o.job.Filename, o.job.ContentType, o.job.Content)
	if err != nil {
		return o.fail("upload", err)
	}
	o.job.FileID = fileID

	o.job.Stage = constants.StageAwaitingURL
	docURL, err := o.api.FileURL(ctx, fileID, o.expiryHours)
	if err != nil {
		return o.fail("file_url", err)
	}
	o.job.DocumentURL = docURL

	o.job.Stage = constants.StageOCRRunning
	result, err := o.api.RunOCR(ctx, docURL)
	if err != nil {
		return o.fail("ocr", err)
	}
	o.job.OCRText = result.AssembleText()
	o.job.Stage = constants.StageOCRReady
	o.logger.Info("pipeline.ocr.ok", "filename", o.job.Filename, "pages", len(result.Pages), "chars", len(o.job.OCRText))

	return o.persistOriginal(ctx)
}

// RunExtraction structures the assembled OCR text into a reviewable record.
func (o *Orchestrator) RunExtraction(ctx context.Context) error {
	if o.job.Stage != constants.StageOCRReady {
		return fmt.Errorf("extraction requires OCR output (stage %s)", o.job.Stage)
	}

	o.job.Stage = constants.StageAIRunning
	fields, err := o.api.ExtractPO(ctx, o.job.OCRText)
	if err != nil {
		return o.fail("extract", err)
	}
	o.job.Record = &fields
	o.job.FormVisible = true
	o.job.Stage = constants.StageReviewable
	o.logger.Info("pipeline.extract.ok", "po_number", fields.PONumber, "line_items", len(fields.LineItems))
	return nil
}

// Confirm replaces the working record with the reviewed one and finishes the
// job.
func (o *Orchestrator) Confirm(record *llm.PurchaseOrderFields) error {
	if o.job.Stage != constants.StageReviewable {
		return fmt.Errorf("confirm requires a reviewable record (stage %s)", o.job.Stage)
	}
	if record == nil {
		return fmt.Errorf("confirm requires a record")
	}
	confirmed := record.Clone()
	o.job.Record = &confirmed
	o.job.FormVisible = false
	o.job.Stage = constants.StageConfirmed
	o.logger.Info("pipeline.confirm", "po_number", confirmed.PONumber)
	return nil
}

// Cancel hides the form and returns the view to the raw OCR text. The
// extracted record is kept untouched; only in-progress form edits are lost.
func (o *Orchestrator) Cancel() error {
	if o.job.Stage != constants.StageReviewable {
		return fmt.Errorf("cancel requires a reviewable record (stage %s)", o.job.Stage)
	}
	o.job.FormVisible = false
	o.job.Stage = constants.StageOCRReady
	return nil
}

// persistOriginal writes the source file to object storage under a
// timestamp-prefixed key. Runs once per successful OCR, independent of
// whether extraction ever happens.
func (o *Orchestrator) persistOriginal(ctx context.Context) error {
	if o.store == nil {
		return nil
	}
	if err := o.store.ListProbe(ctx); err != nil {
		o.job.LastError = err.Error()
		return err
	}
	key := objstore.ObjectKey(o.now(), o.job.Filename)
	if err := o.store.Upload(ctx, key, o.job.Content, o.job.ContentType); err != nil {
		o.job.LastError = err.Error()
		return err
	}
	o.job.StoredKey = key
	o.job.StoredURL = o.store.PublicURL(key)
	o.logger.Info("pipeline.store.ok", "key", key, "url", o.job.StoredURL)
	return nil
}

// fail aborts the sequence: the job goes Errored with the message recorded,
// and data from already-completed stages stays on the job for inspection.
func (o *Orchestrator) fail(op string, err error) error {
	o.job.Stage = constants.StageErrored
	o.job.LastError = err.Error()
	o.logger.Error("pipeline."+op+".failed", "filename", o.job.Filename, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
