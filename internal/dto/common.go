package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// FormErrors re-renders a submitted form: field values echoed by the
// caller plus the collected validation messages.
type FormErrors struct {
	Errors []string `json:"errors"`
}
