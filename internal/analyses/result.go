package analyses

// Result is the normalized assessment returned to callers. Every field is
// always populated once a Result exists; it is safe to render as-is.
type Result struct {
	MatchScore      int      `json:"matchScore"`
	MissingKeywords []string `json:"missingKeywords"`
	ProfileSummary  string   `json:"profileSummary"`

	// ScoreError is set when the backend's match value could not be
	// normalized. MatchScore is 0 in that case and presentation falls back
	// to showing the raw value instead of a percentage.
	ScoreError *ScoreError `json:"scoreError,omitempty"`
}
