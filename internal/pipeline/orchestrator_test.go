package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poflow/po-upload/constants"
	"github.com/poflow/po-upload/internal/llm"
	"github.com/poflow/po-upload/internal/ocr"
)

type fakeAPI struct {
	uploadErr  error
	fileURLErr error
	ocrErr     error
	extractErr error

	ocrResult ocr.Result
	fields    llm.PurchaseOrderFields

	calls        []string
	gotExtracted string
	gotExpiry    int
}

func (f *fakeAPI) UploadFile(ctx context.Context, filename, contentType string, content []byte) (string, error) {
	f.calls = append(f.calls, "upload")
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "file-123", nil
}

func (f *fakeAPI) FileURL(ctx context.Context, fileID string, expiryHours int) (string, error) {
	f.calls = append(f.calls, "file_url")
	f.gotExpiry = expiryHours
	if f.fileURLErr != nil {
		return "", f.fileURLErr
	}
	return "https://signed.example/" + fileID, nil
}

func (f *fakeAPI) RunOCR(ctx context.Context, documentURL string) (ocr.Result, error) {
	f.calls = append(f.calls, "ocr")
	if f.ocrErr != nil {
		return ocr.Result{}, f.ocrErr
	}
	return f.ocrResult, nil
}

func (f *fakeAPI) ExtractPO(ctx context.Context, extractedText string) (llm.PurchaseOrderFields, error) {
	f.calls = append(f.calls, "extract")
	f.gotExtracted = extractedText
	if f.extractErr != nil {
		return llm.PurchaseOrderFields{}, f.extractErr
	}
	return f.fields, nil
}

type fakeStore struct {
	probeErr  error
	uploadErr error
	gotKey    string
}

func (f *fakeStore) ListProbe(ctx context.Context) error { return f.probeErr }

func (f *fakeStore) Upload(ctx context.Context, key string, content []byte, contentType string) error {
	f.gotKey = key
	return f.uploadErr
}

func (f *fakeStore) PublicURL(key string) string {
	return "https://store.example/public/" + key
}

func twoPageResult() ocr.Result {
	return ocr.Result{Pages: []ocr.Page{{Markdown: "Page1"}, {Markdown: "Page2"}}}
}

func acmeFields() llm.PurchaseOrderFields {
	return llm.PurchaseOrderFields{
		CustomerName: "Acme Corp",
		PONumber:     "1001",
		PODate:       "03/05/2024",
		LineItems:    []llm.LineItemFields{{Quantity: 2, UnitPrice: 5.00, TotalPrice: 10.00}},
	}
}

func selected(t *testing.T, api *fakeAPI, store ObjectStore) *Orchestrator {
	t.Helper()
	o := NewOrchestrator(api, store, nil)
	o.now = func() time.Time { return time.UnixMilli(1700000000000) }
	require.NoError(t, o.Select("po.pdf", "application/pdf", []byte("%PDF-1.4")))
	return o
}

func TestSubmitHappyPath(t *testing.T) {
	api := &fakeAPI{ocrResult: twoPageResult()}
	store := &fakeStore{}
	o := selected(t, api, store)

	require.NoError(t, o.Submit(context.Background()))

	job := o.Job()
	assert.Equal(t, constants.StageOCRReady, job.Stage)
	assert.Equal(t, "file-123", job.FileID)
	assert.Equal(t, "https://signed.example/file-123", job.DocumentURL)
	assert.Equal(t, "Page1\n<<<>>>\nPage2", job.OCRText)
	assert.Equal(t, 24, api.gotExpiry)
	assert.Equal(t, []string{"upload", "file_url", "ocr"}, api.calls)

	// storage side-step ran with the timestamp-prefixed key
	assert.Equal(t, "1700000000000-po.pdf", store.gotKey)
	assert.Equal(t, "https://store.example/public/1700000000000-po.pdf", job.StoredURL)
}

func TestExtractionUsesAssembledText(t *testing.T) {
	api := &fakeAPI{ocrResult: twoPageResult(), fields: acmeFields()}
	o := selected(t, api, &fakeStore{})
	require.NoError(t, o.Submit(context.Background()))

	require.NoError(t, o.RunExtraction(context.Background()))

	job := o.Job()
	assert.Equal(t, constants.StageReviewable, job.Stage)
	assert.True(t, job.FormVisible)
	assert.Equal(t, "Page1\n<<<>>>\nPage2", api.gotExtracted)
	require.NotNil(t, job.Record)
	assert.Equal(t, "1001", job.Record.PONumber)
	assert.Equal(t, "03/05/2024", job.Record.PODate)
}

func TestFailureRetainsPriorStageData(t *testing.T) {
	api := &fakeAPI{ocrErr: errors.New("ocr provider unavailable")}
	o := selected(t, api, nil)

	err := o.Submit(context.Background())
	require.Error(t, err)

	job := o.Job()
	assert.Equal(t, constants.StageErrored, job.Stage)
	assert.Contains(t, job.LastError, "ocr provider unavailable")
	// upload and file-url succeeded before the failure; their data stays
	assert.Equal(t, "file-123", job.FileID)
	assert.Equal(t, "https://signed.example/file-123", job.DocumentURL)
	assert.Empty(t, job.OCRText)
}

func TestUploadFailureStopsSequence(t *testing.T) {
	api := &fakeAPI{uploadErr: errors.New("boom")}
	o := selected(t, api, nil)

	require.Error(t, o.Submit(context.Background()))
	assert.Equal(t, []string{"upload"}, api.calls)
	assert.Equal(t, constants.StageErrored, o.Job().Stage)
}

func TestStorageFailureKeepsOCRResult(t *testing.T) {
	api := &fakeAPI{ocrResult: twoPageResult()}
	store := &fakeStore{probeErr: fmt.Errorf(`Storage bucket "purchase-orders" not found. Please create it in your storage dashboard.`)}
	o := selected(t, api, store)

	err := o.Submit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found. Please create it")

	job := o.Job()
	assert.Equal(t, constants.StageOCRReady, job.Stage)
	assert.Equal(t, "Page1\n<<<>>>\nPage2", job.OCRText)
	assert.Empty(t, job.StoredURL)
}

func TestSelectResetsEverything(t *testing.T) {
	api := &fakeAPI{ocrResult: twoPageResult(), fields: acmeFields()}
	o := selected(t, api, &fakeStore{})
	require.NoError(t, o.Submit(context.Background()))
	require.NoError(t, o.RunExtraction(context.Background()))

	require.NoError(t, o.Select("next.png", "image/png", []byte("png-bytes")))

	job := o.Job()
	assert.Equal(t, constants.StageSelected, job.Stage)
	assert.Equal(t, "next.png", job.Filename)
	assert.Empty(t, job.OCRText)
	assert.Nil(t, job.Record)
	assert.False(t, job.FormVisible)
	assert.Empty(t, job.FileID)
	assert.Empty(t, job.StoredURL)
	assert.Empty(t, job.LastError)
}

func TestSelectRejectsUnsupportedExtension(t *testing.T) {
	o := NewOrchestrator(&fakeAPI{}, nil, nil)
	assert.Error(t, o.Select("notes.txt", "text/plain", []byte("x")))
}

func TestConfirmReplacesWorkingRecord(t *testing.T) {
	api := &fakeAPI{ocrResult: twoPageResult(), fields: acmeFields()}
	o := selected(t, api, &fakeStore{})
	require.NoError(t, o.Submit(context.Background()))
	require.NoError(t, o.RunExtraction(context.Background()))

	edited := acmeFields()
	edited.LineItems[0].Quantity = 3
	require.NoError(t, o.Confirm(&edited))

	job := o.Job()
	assert.Equal(t, constants.StageConfirmed, job.Stage)
	assert.False(t, job.FormVisible)
	assert.Equal(t, float64(3), job.Record.LineItems[0].Quantity)
	assert.Equal(t, "1001", job.Record.PONumber)
}

func TestCancelReturnsToOCRTextWithoutMutatingRecord(t *testing.T) {
	api := &fakeAPI{ocrResult: twoPageResult(), fields: acmeFields()}
	o := selected(t, api, &fakeStore{})
	require.NoError(t, o.Submit(context.Background()))
	require.NoError(t, o.RunExtraction(context.Background()))

	require.NoError(t, o.Cancel())

	job := o.Job()
	assert.Equal(t, constants.StageOCRReady, job.Stage)
	assert.False(t, job.FormVisible)
	// the extracted record survives; only form edits are lost
	require.NotNil(t, job.Record)
	assert.Equal(t, float64(2), job.Record.LineItems[0].Quantity)
	assert.Equal(t, "Page1\n<<<>>>\nPage2", job.OCRText)
}

func TestStageGuards(t *testing.T) {
	o := NewOrchestrator(&fakeAPI{}, nil, nil)

	assert.Error(t, o.Submit(context.Background()))
	assert.Error(t, o.RunExtraction(context.Background()))
	assert.Error(t, o.Confirm(&llm.PurchaseOrderFields{}))
	assert.Error(t, o.Cancel())
}
