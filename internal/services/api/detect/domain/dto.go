// Package domain holds DTOs for detect http and service contracts
package domain

import "spanglish/internal/core/classifier"

// DetectInput is the input for classifying a single text
type DetectInput struct {
	Text      string   `json:"text" validate:"required,min=1,max=10000" example:"I need to comprar milk before the tienda closes"`
	Threshold *float64 `json:"threshold,omitempty" validate:"omitempty,min=0,max=100" example:"40"`
}

// BatchInput is the input for classifying several texts in one call
type BatchInput struct {
	Texts     []string `json:"texts" validate:"required,min=1,max=100,dive,min=1,max=10000"`
	Threshold *float64 `json:"threshold,omitempty" validate:"omitempty,min=0,max=100" example:"40"`
}

// Result re-exports the classifier outcome as the wire payload
type Result = classifier.Result

// BatchItem is one entry of a batch response. Exactly one of Result and
// Error is set; Index points back into the request texts
type BatchItem struct {
	Index  int     `json:"index"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}
