package constants

// Stage is the canonical lifecycle stage for an upload job.
type Stage string

// Stable values (store these exact strings in DB).
const (
	StageIdle        Stage = "IDLE"         // no file selected
	StageSelected    Stage = "SELECTED"     // file chosen, local preview only
	StageUploading   Stage = "UPLOADING"    // multipart upload to OCR provider in flight
	StageAwaitingURL Stage = "AWAITING_URL" // signed-URL fetch in flight
	StageOCRRunning  Stage = "OCR_RUNNING"  // OCR call in flight
	StageOCRReady    Stage = "OCR_READY"    // OCR text assembled, awaiting AI extraction
	StageAIRunning   Stage = "AI_RUNNING"   // field extraction in flight
	StageReviewable  Stage = "REVIEWABLE"   // structured record available for review
	StageConfirmed   Stage = "CONFIRMED"    // record confirmed, job done
	StageErrored     Stage = "ERRORED"      // terminal failure
)

// InFlight reports whether the stage has a provider call outstanding.
func (s Stage) InFlight() bool {
	switch s {
	case StageUploading, StageAwaitingURL, StageOCRRunning, StageAIRunning:
		return true
	}
	return false
}

// Terminal reports whether the job can make no further progress.
func (s Stage) Terminal() bool {
	return s == StageConfirmed || s == StageErrored
}
