package common

import (
	"github.com/google/uuid"
)

// NewAssessmentID generates a unique assessment ID with the "asmt_" prefix
// Format: asmt_<uuid>
func NewAssessmentID() string {
	return "asmt_" + uuid.New().String()
}

// NewRequestID generates a unique request ID for tracing
func NewRequestID() string {
	return uuid.New().String()
}
