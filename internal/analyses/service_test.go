package analyses

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type staticCaller struct {
	resp string
	err  error
	// last prompt seen, for content assertions
	prompt string
}

func (s *staticCaller) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	s.prompt = prompt
	return s.resp, s.err
}

func newService(caller *staticCaller) (*Service, *MemoryRepo) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, LLM: caller, Provider: "gemini", Model: "test-model"}
	return svc, repo
}

func TestAnalyzeHappyPath(t *testing.T) {
	caller := &staticCaller{resp: `{"JD Match":"85%","MissingKeywords":["Docker","Kubernetes"],"Profile Summary":"Strong backend profile"}`}
	svc, repo := newService(caller)

	analysis, err := svc.Analyze(context.Background(), "resume text", "job description")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.Status != StatusCompleted {
		t.Fatalf("expected completed status, got %q", analysis.Status)
	}
	if analysis.Result == nil || analysis.Result.MatchScore != 85 {
		t.Fatalf("unexpected result: %+v", analysis.Result)
	}
	if len(analysis.Result.MissingKeywords) != 2 {
		t.Fatalf("unexpected keywords: %v", analysis.Result.MissingKeywords)
	}
	if analysis.PromptHash == "" {
		t.Fatal("expected prompt hash")
	}

	stored, err := repo.GetByID(context.Background(), analysis.ID)
	if err != nil {
		t.Fatalf("get stored analysis: %v", err)
	}
	if stored.Status != StatusCompleted {
		t.Fatalf("stored analysis not completed: %q", stored.Status)
	}

	if !strings.Contains(caller.prompt, "resume text") || !strings.Contains(caller.prompt, "job description") {
		t.Fatal("prompt did not embed the inputs")
	}
}

func TestAnalyzeRejectsEmptyInputs(t *testing.T) {
	svc, _ := newService(&staticCaller{resp: "{}"})

	if _, err := svc.Analyze(context.Background(), "  ", "jd"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Analyze(context.Background(), "resume", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeBackendFailure(t *testing.T) {
	caller := &staticCaller{err: errors.New("quota exceeded")}
	svc, repo := newService(caller)

	_, err := svc.Analyze(context.Background(), "resume", "jd")
	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected BackendError, got %v", err)
	}

	// failure is recorded for history
	analyses, err := repo.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(analyses) != 1 || analyses[0].Status != StatusFailed {
		t.Fatalf("expected one failed record, got %+v", analyses)
	}
	if analyses[0].ErrorMessage == nil {
		t.Fatal("expected error message on failed record")
	}
}

func TestAnalyzeMalformedResponseKeepsRaw(t *testing.T) {
	caller := &staticCaller{resp: "{not-json"}
	svc, repo := newService(caller)

	_, err := svc.Analyze(context.Background(), "resume", "jd")
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}

	analyses, _ := repo.List(context.Background(), 10, 0)
	if len(analyses) != 1 {
		t.Fatalf("expected one record, got %d", len(analyses))
	}
	if analyses[0].RawResponse != "{not-json" {
		t.Fatalf("expected raw response retained, got %q", analyses[0].RawResponse)
	}
}

func TestAnalyzeScoreDegradationCompletes(t *testing.T) {
	caller := &staticCaller{resp: `{"JD Match":"n/a","MissingKeywords":["Go"],"Profile Summary":"ok"}`}
	svc, _ := newService(caller)

	analysis, err := svc.Analyze(context.Background(), "resume", "jd")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.Status != StatusCompleted {
		t.Fatalf("score degradation must not fail the request, got %q", analysis.Status)
	}
	if analysis.Result.ScoreError == nil {
		t.Fatal("expected score error marker")
	}
	if analysis.Result.MissingKeywords[0] != "Go" || analysis.Result.ProfileSummary != "ok" {
		t.Fatalf("other fields should survive: %+v", analysis.Result)
	}
}

func TestAnalyzeDeterministicPrompt(t *testing.T) {
	caller := &staticCaller{resp: "{}"}
	svc, _ := newService(caller)

	first, err := svc.Analyze(context.Background(), "resume", "jd")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := svc.Analyze(context.Background(), "resume", "jd")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if first.PromptHash != second.PromptHash {
		t.Fatal("identical inputs must produce identical prompts")
	}
}

func TestGetAndList(t *testing.T) {
	caller := &staticCaller{resp: `{"JD Match":"10%"}`}
	svc, _ := newService(caller)

	created, err := svc.Analyze(context.Background(), "resume", "jd")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected %q, got %q", created.ID, got.ID)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	listed, err := svc.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one analysis, got %d", len(listed))
	}
}
