package analyses

import (
	"encoding/json"
	"errors"

	"smartats-backend/internal/llm"
)

const defaultSummary = "No summary available"

// Parse decodes the backend's raw text into a Result. The only fatal failure
// is a top level that is not a JSON object; every field below that degrades
// independently, so one malformed field never blocks the others.
func Parse(raw string) (Result, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Result{}, &MalformedResponseError{Raw: raw, Err: err}
	}

	res := Result{
		MissingKeywords: stringSlice(payload[llm.KeyKeywords]),
		ProfileSummary:  defaultSummary,
	}

	match, ok := payload[llm.KeyMatch]
	if !ok {
		match = "0%"
	}
	if score, err := normalizeScore(match); err != nil {
		var scoreErr *ScoreError
		errors.As(err, &scoreErr)
		res.ScoreError = scoreErr
	} else {
		res.MatchScore = score
	}

	if summary, ok := payload[llm.KeySummary].(string); ok {
		res.ProfileSummary = summary
	}

	return res, nil
}

// stringSlice keeps string entries in backend order and silently drops
// everything else. Absent or non-array values yield an empty slice.
func stringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
