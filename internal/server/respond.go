package server

import (
	"encoding/json"
	"net/http"

	"github.com/solgate/solgate/internal/log"
)

// envelope is the success wire shape used by the keypair, message,
// send, and token endpoint groups.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// legacyError is the failure wire shape of the account, airdrop, and
// transfer endpoint group, kept for compatibility with existing clients.
type legacyError struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Server.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeData writes a 200 success envelope.
func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// writeBare writes a 200 response without the success envelope.
func writeBare(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeError writes a failure in the enveloped shape.
func writeError(w http.ResponseWriter, e *Error) {
	writeJSON(w, e.HTTPStatus(), envelope{Success: false, Error: e.Error()})
}

// writeLegacyError writes a failure in the legacy shape.
func writeLegacyError(w http.ResponseWriter, e *Error) {
	status := e.HTTPStatus()
	writeJSON(w, status, legacyError{Error: e.Error(), Status: status})
}
