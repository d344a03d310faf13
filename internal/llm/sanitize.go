package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

var reISODate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
var reLooseSlashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// NormalizeAndSanitizeJSON
// - Renames known synonyms (po_number -> poNumber, items -> lineItems, ...)
// - Drops null/empty optionals and unknown keys (additionalProperties = false friendliness)
// - Coerces money/quantity strings ("$5.00", "1,200") to numbers
// - Rewrites ISO dates into the canonical mm/dd/yyyy form
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			// don't overwrite existing value if already present
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to our schema
	renamed("customer_name", "customerName")
	renamed("companyName", "customerName")
	renamed("po_number", "poNumber")
	renamed("po_date", "poDate")
	renamed("line_items", "lineItems")
	renamed("items", "lineItems")

	// 2) trim header strings; drop null/empty
	for _, k := range []string{"customerName", "poNumber", "poDate"} {
		switch t := m[k].(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				m[k] = ""
			} else {
				m[k] = s
			}
		case nil:
			if _, present := m[k]; present {
				dropped = append(dropped, k+"(null)")
			}
			m[k] = ""
		}
	}

	// 3) canonicalize the date; malformed values are left for the validator
	if s, ok := m["poDate"].(string); ok && s != "" {
		m["poDate"] = canonicalizeDate(s)
	}

	// 4) line items: keep only known keys, coerce numerics
	items, _ := m["lineItems"].([]any)
	clean := make([]any, 0, len(items))
	for i, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			dropped = append(dropped, fmt.Sprintf("lineItems[%d](type)", i))
			continue
		}
		clean = append(clean, sanitizeLineItem(obj, i, &dropped))
	}
	m["lineItems"] = clean

	// 5) remove unknown top-level keys
	allowed := map[string]struct{}{
		"customerName": {}, "poNumber": {}, "poDate": {}, "lineItems": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

func sanitizeLineItem(obj map[string]any, idx int, dropped *[]string) map[string]any {
	rename := func(from, to string) {
		if v, ok := obj[from]; ok {
			if _, exists := obj[to]; !exists {
				obj[to] = v
			}
			delete(obj, from)
		}
	}
	rename("item_number", "itemNumber")
	rename("item", "itemNumber")
	rename("unit_price", "unitPrice")
	rename("price", "unitPrice")
	rename("total_price", "totalPrice")
	rename("total", "totalPrice")
	rename("qty", "quantity")

	for _, k := range []string{"itemNumber", "description"} {
		switch t := obj[k].(type) {
		case string:
			obj[k] = strings.TrimSpace(t)
		case float64:
			// models occasionally emit bare numbers for item codes
			obj[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case nil:
			delete(obj, k)
		}
	}

	for _, k := range []string{"quantity", "unitPrice", "totalPrice"} {
		v, ok := obj[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			// already numeric
		case string:
			if f, ok := parseMoney(t); ok {
				obj[k] = f
			} else {
				delete(obj, k)
				*dropped = append(*dropped, fmt.Sprintf("lineItems[%d].%s(unparseable)", idx, k))
			}
		case nil:
			delete(obj, k)
			*dropped = append(*dropped, fmt.Sprintf("lineItems[%d].%s(null)", idx, k))
		default:
			_ = t
			delete(obj, k)
			*dropped = append(*dropped, fmt.Sprintf("lineItems[%d].%s(type)", idx, k))
		}
	}

	allowed := map[string]struct{}{
		"itemNumber": {}, "description": {}, "quantity": {}, "unitPrice": {}, "totalPrice": {},
	}
	for k := range obj {
		if _, ok := allowed[k]; !ok {
			delete(obj, k)
			*dropped = append(*dropped, fmt.Sprintf("lineItems[%d].%s(unknown)", idx, k))
		}
	}
	return obj
}

// parseMoney accepts "5", "5.00", "$5.00", "1,200.50" and signed variants.
func parseMoney(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// canonicalizeDate rewrites yyyy-mm-dd and loose m/d/yyyy dates to mm/dd/yyyy.
// Anything else passes through unchanged.
func canonicalizeDate(s string) string {
	if g := reISODate.FindStringSubmatch(s); g != nil {
		return g[2] + "/" + g[3] + "/" + g[1]
	}
	if g := reLooseSlashDate.FindStringSubmatch(s); g != nil {
		return pad2(g[1]) + "/" + pad2(g[2]) + "/" + g[3]
	}
	return s
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
