package analyses

import "time"

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Analysis represents one resume / job-description evaluation.
type Analysis struct {
	ID             string     `json:"id"`
	JobDescription string     `json:"jobDescription"`
	PromptHash     string     `json:"promptHash"`
	Provider       string     `json:"provider"`
	Model          string     `json:"model"`
	Status         string     `json:"status"`
	Result         *Result    `json:"result,omitempty"`
	RawResponse    string     `json:"-"`
	ErrorMessage   *string    `json:"errorMessage,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}
