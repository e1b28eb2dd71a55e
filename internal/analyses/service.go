package analyses

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartats-backend/internal/llm"
	"smartats-backend/internal/shared/metrics"
	"smartats-backend/internal/shared/telemetry"
	"smartats-backend/internal/shared/util"
)

// Service runs the analysis pipeline: prompt -> backend -> parse -> persist.
// The backend caller is injected so the pipeline is testable without network
// access. No retries happen here; that is the caller's concern.
type Service struct {
	Repo     Repo
	LLM      llm.Caller
	Provider string
	Model    string
}

// Analyze evaluates resume text against a job description and records the
// outcome. Backend failures and undecodable responses are fatal to the
// request; a bad match-score only degrades the score field of the result.
func (s *Service) Analyze(ctx context.Context, resumeText, jobDescription string) (Analysis, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return Analysis{}, ErrInvalidInput
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	prompt := llm.BuildPrompt(resumeText, jobDescription)
	analysis := Analysis{
		ID:             uuid.NewString(),
		JobDescription: jobDescription,
		PromptHash:     util.HashPrompt(prompt),
		Provider:       s.Provider,
		Model:          s.Model,
		CreatedAt:      time.Now().UTC(),
	}

	raw, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		backendErr := &BackendError{Err: err}
		s.recordFailure(ctx, analysis, "", backendErr)
		return Analysis{}, backendErr
	}

	result, err := Parse(raw)
	if err != nil {
		s.recordFailure(ctx, analysis, raw, err)
		return Analysis{}, err
	}

	now := time.Now().UTC()
	analysis.Status = StatusCompleted
	analysis.Result = &result
	analysis.RawResponse = raw
	analysis.CompletedAt = &now

	if result.ScoreError != nil {
		telemetry.Warn("analysis.score_degraded", map[string]any{
			"analysis_id": analysis.ID,
			"raw_score":   result.ScoreError.Raw,
			"reason":      result.ScoreError.Reason,
		})
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("analysis.complete", map[string]any{
		"analysis_id": analysis.ID,
		"match_score": result.MatchScore,
		"keywords":    len(result.MissingKeywords),
		"model":       s.Model,
	})
	return analysis, nil
}

// Get returns one analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	return s.Repo.GetByID(ctx, analysisID)
}

// List returns recent analyses, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	return s.Repo.List(ctx, limit, offset)
}

// recordFailure persists a failed analysis with the raw response retained for
// diagnosis. Persistence here is best-effort: the caller already has a more
// useful error to report.
func (s *Service) recordFailure(ctx context.Context, analysis Analysis, raw string, cause error) {
	metrics.IncAnalysisFailed()

	now := time.Now().UTC()
	msg := cause.Error()
	analysis.Status = StatusFailed
	analysis.RawResponse = raw
	analysis.ErrorMessage = &msg
	analysis.CompletedAt = &now

	if err := s.Repo.Create(ctx, analysis); err != nil {
		telemetry.Error("analysis.record_failure", map[string]any{
			"analysis_id": analysis.ID,
			"error":       err.Error(),
		})
	}
}
