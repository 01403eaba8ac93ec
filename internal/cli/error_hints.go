package cli

import (
	"errors"
	"net/http"

	"github.com/vburojevic/loglens/internal/api"
)

func hintForAPIError(globals *Globals, err error) string {
	if err == nil {
		return ""
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return ""
	}

	switch {
	case apiErr.Transport():
		return "Is the backend running at " + globals.APIURL + "? Set --api-url or LOGLENS_API_URL to point elsewhere"
	case errors.Is(err, api.ErrMalformedResponse):
		return "The backend answered with an unexpected body; check that --api-url points at the analysis API"
	case apiErr.StatusCode == http.StatusNotFound:
		return "Check the analysis id; `loglens upload <file>` prints the id of a new analysis"
	case apiErr.StatusCode >= http.StatusInternalServerError:
		return "Check the backend logs"
	}
	return ""
}
