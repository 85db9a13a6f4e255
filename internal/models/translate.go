package models

type TranslateRequest struct {
	Text string `json:"text" validate:"required,min=1"`
	From string `json:"from" validate:"required,oneof=en hi mr"`
	To   string `json:"to" validate:"required,oneof=en hi mr"`
}

// Translated is false when the translation service failed and the text
// field still carries the source text. Callers treat that as non-fatal.
type TranslateResponse struct {
	Text       string `json:"text"`
	Translated bool   `json:"translated"`
}
