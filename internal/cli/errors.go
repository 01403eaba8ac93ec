package cli

import (
	"errors"
	"net/http"

	"github.com/vburojevic/loglens/internal/api"
	"github.com/vburojevic/loglens/internal/output"
)

// outputErrorCommon normalizes error emission across commands, respecting
// ndjson vs text formats so scripts always get machine-readable failures.
func outputErrorCommon(globals *Globals, code, message string, hint ...string) error {
	if globals != nil {
		w, format := globals.Stderr, "text"
		if globals.Format == "ndjson" {
			w, format = globals.Stdout, "ndjson"
		}
		_ = output.NewEmitter(w, format).Error(code, message, hint...)
	}
	return &CLIError{Code: code, Message: message, Hint: firstHint(hint)}
}

// outputAPIError classifies a client failure and emits it once under message.
func outputAPIError(globals *Globals, message string, err error) error {
	globals.Debug("api error: %v", err)
	return outputErrorCommon(globals, apiErrorCode(err), message, hintForAPIError(globals, err))
}

func apiErrorCode(err error) string {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return CodeAPI
	}
	switch {
	case apiErr.Transport():
		return CodeNetwork
	case errors.Is(err, api.ErrMalformedResponse):
		return CodeMalformedResponse
	case apiErr.StatusCode == http.StatusNotFound:
		return CodeNotFound
	case apiErr.StatusCode == http.StatusUnauthorized, apiErr.StatusCode == http.StatusForbidden:
		return CodeUnauthorized
	default:
		return CodeAPI
	}
}

func firstHint(hint []string) string {
	if len(hint) == 0 {
		return ""
	}
	return hint[0]
}
