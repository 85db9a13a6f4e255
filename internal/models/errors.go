package models

// ErrorResponse is the JSON body of every non-2xx response. Field is only
// populated for validation failures where the offending field is derivable.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
