// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/petrolsys/fueldash/pkg/errors"
)

const (
	msgCannotConnect    = "Impossibile connettersi al server. Controlla la tua connessione."
	msgValidationFailed = "Validazione fallita. Controlla i tuoi input."
	msgUnexpected       = "Si è verificato un errore imprevisto"
)

// statusMessages localizes the common HTTP failure statuses.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Richiesta non valida",
	http.StatusUnauthorized:        "Effettua di nuovo il login",
	http.StatusForbidden:           "Non hai i permessi per questa operazione",
	http.StatusNotFound:            "Risorsa non trovata",
	http.StatusInternalServerError: "Errore del server",
	http.StatusServiceUnavailable:  "Servizio temporaneamente non disponibile",
}

// constraintRewrites maps known backend-constraint substrings to friendly
// replacements. Matching is case-insensitive against the whole message.
var constraintRewrites = []struct {
	substr  string
	message string
}{
	{"violates foreign key constraint", "Impossibile eliminare questo elemento poiché è in uso altrove"},
	{"duplicate key value violates unique constraint", "Elemento già esistente"},
	{"network error", "Impossibile connettersi al server"},
}

// ToMessage converts any failure into a human-readable Italian message.
// It never fails: unknown shapes fall back to generic wording.
func ToMessage(err error) string {
	if err == nil {
		return ""
	}

	sdkerr, ok := err.(errors.SDKError)
	if !ok {
		if msg := err.Error(); msg != "" {
			return msg
		}
		return msgUnexpected
	}

	status := sdkerr.StatusCode()
	if status == 0 {
		return msgCannotConnect
	}

	body := sdkerr.Body()

	if status == http.StatusUnprocessableEntity {
		if msg := flattenValidationErrors(body); msg != "" {
			return msg
		}
		if msg := bodyMessage(body); msg != "" {
			return msg
		}
		return msgValidationFailed
	}

	if msg := bodyMessage(body); msg != "" {
		return msg
	}
	if len(body) > 0 && !json.Valid(body) {
		return truncate(strings.TrimSpace(string(body)), 200)
	}

	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return fmt.Sprintf("Errore del server (%d)", status)
}

// flattenValidationErrors joins a field→[messages] validation body into a
// single ". "-separated string.
func flattenValidationErrors(body []byte) string {
	var payload struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Errors) == 0 {
		return ""
	}

	fields := make([]string, 0, len(payload.Errors))
	for field := range payload.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var all []string
	for _, field := range fields {
		all = append(all, payload.Errors[field]...)
	}
	return strings.Join(all, ". ")
}

// bodyMessage extracts the most specific message carried by a JSON body,
// preferring message over error over detail.
func bodyMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch {
	case payload.Message != "":
		return payload.Message
	case payload.Error != "":
		return payload.Error
	default:
		return payload.Detail
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// toastError surfaces a failed operation to the user: the raw error is
// translated, prefixed with the operation context, and passed through the
// constraint rewrites. The raw error also goes to the diagnostic log, which
// never alters the notified message.
func (s *Session) toastError(context string, err error) {
	message := ToMessage(err)
	if context != "" {
		message = fmt.Sprintf("%s: %s", context, message)
	}

	lower := strings.ToLower(message)
	for _, rw := range constraintRewrites {
		if strings.Contains(lower, rw.substr) {
			message = rw.message
			break
		}
	}

	s.notifier.Notify(Danger, message)
	s.logger.Error("operation failed", slog.String("context", context), slog.Any("error", err))
}
