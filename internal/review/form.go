// Package review holds the editable form state between extraction and
// confirmation. The form works on a private copy of the extracted record;
// nothing the user edits is visible outside until Confirm.
package review

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/poflow/po-upload/internal/llm"
)

var (
	reSlashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	reISODate   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// Form is the editable view of an extracted purchase order. Dates are held in
// ISO form (yyyy-mm-dd) while editing so date inputs can bind to them
// directly; Confirm converts back to the display form.
type Form struct {
	fields llm.PurchaseOrderFields
}

// NewForm seeds a form from an extracted record. The record is deep-copied;
// later edits never touch the caller's value.
func NewForm(rec llm.PurchaseOrderFields) *Form {
	f := &Form{fields: rec.Clone()}
	f.fields.PODate = toISODate(f.fields.PODate)
	return f
}

// Fields returns a snapshot of the current form state (dates in ISO form).
func (f *Form) Fields() llm.PurchaseOrderFields {
	return f.fields.Clone()
}

func (f *Form) SetCustomerName(v string) { f.fields.CustomerName = v }
func (f *Form) SetPONumber(v string)     { f.fields.PONumber = v }

// SetPODate accepts the ISO form used while editing.
func (f *Form) SetPODate(v string) { f.fields.PODate = v }

// AddLineItem appends an empty row for manual entry.
func (f *Form) AddLineItem() {
	f.fields.LineItems = append(f.fields.LineItems, llm.LineItemFields{})
}

// RemoveLineItem deletes the row at index; out-of-range indexes are ignored.
func (f *Form) RemoveLineItem(index int) {
	if index < 0 || index >= len(f.fields.LineItems) {
		return
	}
	f.fields.LineItems = append(f.fields.LineItems[:index], f.fields.LineItems[index+1:]...)
}

// SetLineItem replaces the row at index; out-of-range indexes are an error.
func (f *Form) SetLineItem(index int, item llm.LineItemFields) error {
	if index < 0 || index >= len(f.fields.LineItems) {
		return fmt.Errorf("line item index %d out of range (have %d)", index, len(f.fields.LineItems))
	}
	f.fields.LineItems[index] = item
	return nil
}

// Confirm finalizes the form and returns the record with the date converted
// back to mm/dd/yyyy. The returned value is independent of the form.
func (f *Form) Confirm() *llm.PurchaseOrderFields {
	out := f.fields.Clone()
	out.PODate = toSlashDate(out.PODate)
	return &out
}

// toISODate converts mm/dd/yyyy (loosely, m/d/yyyy) to yyyy-mm-dd. Anything
// that does not match passes through unchanged.
func toISODate(s string) string {
	m := reSlashDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[1]), pad2(m[2]))
}

// toSlashDate converts yyyy-mm-dd back to mm/dd/yyyy; non-matching values
// pass through unchanged.
func toSlashDate(s string) string {
	m := reISODate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	return fmt.Sprintf("%s/%s/%s", m[2], m[3], m[1])
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
