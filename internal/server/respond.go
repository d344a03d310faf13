package server

import (
	"encoding/json"
	"net/http"
)

// errorEnvelope is the error shape every endpoint returns: the value under
// "error" is either a short message string or the provider's raw JSON.
type errorEnvelope struct {
	Error json.RawMessage `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErrorMessage writes { "error": "<msg>" } with the given status.
func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	raw, _ := json.Marshal(msg)
	writeJSON(w, status, errorEnvelope{Error: raw})
}

// writeErrorRaw writes { "error": <payload> } with the given status. Payloads
// that are not valid JSON are re-encoded as a JSON string so the envelope
// stays parseable.
func writeErrorRaw(w http.ResponseWriter, status int, payload []byte) {
	if !json.Valid(payload) {
		payload, _ = json.Marshal(string(payload))
	}
	writeJSON(w, status, errorEnvelope{Error: payload})
}

// relayJSON forwards a provider's successful body unchanged.
func relayJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
