package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ListEnvelope wraps paged collection payloads with their row count.
type ListEnvelope struct {
	Total int64 `json:"total"`
	Data  any   `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
