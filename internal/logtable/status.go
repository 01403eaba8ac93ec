package logtable

// StatusClass is the presentational bucket of a status code
type StatusClass int

const (
	StatusNeutral StatusClass = iota
	StatusSuccess
	StatusClientError
	StatusServerError
)

func (c StatusClass) String() string {
	switch c {
	case StatusSuccess:
		return "success"
	case StatusClientError:
		return "client_error"
	case StatusServerError:
		return "server_error"
	default:
		return "neutral"
	}
}

// ClassifyStatus buckets a status code by its first character only.
func ClassifyStatus(code string) StatusClass {
	if code == "" {
		return StatusNeutral
	}
	switch code[0] {
	case '2':
		return StatusSuccess
	case '4':
		return StatusClientError
	case '5':
		return StatusServerError
	default:
		return StatusNeutral
	}
}
