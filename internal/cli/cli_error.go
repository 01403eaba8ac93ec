package cli

// CLIError is a structured error used for consistent NDJSON/text emission.
type CLIError struct {
	Code    string
	Message string
	Hint    string
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Error codes emitted in error records
const (
	CodeNetwork           = "NETWORK_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeMalformedResponse = "MALFORMED_RESPONSE"
	CodeAPI               = "API_ERROR"
	CodeLoginFailed       = "LOGIN_FAILED"
	CodeUploadFailed      = "UPLOAD_FAILED"
	CodeInvalidFlags      = "INVALID_FLAGS"
	CodeNotInteractive    = "NOT_INTERACTIVE"
	CodeFileError         = "FILE_ERROR"
	CodeConfigError       = "CONFIG_ERROR"
)
