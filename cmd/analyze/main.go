package main

// One-shot analysis from the command line:
//   go run ./cmd/analyze -resume resume.pdf -jd jd.txt

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"smartats-backend/internal/analyses"
	"smartats-backend/internal/extract"
	"smartats-backend/internal/llm/gemini"
	"smartats-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume file (pdf or docx)")
	jdPath := flag.String("jd", "", "Path to job description text file")
	outPath := flag.String("out", "", "Path to write JSON output (optional)")
	model := flag.String("model", cfg.GeminiModel, "Gemini model")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}
	if strings.TrimSpace(*jdPath) == "" {
		exitErr("job description path is required")
	}
	if err := cfg.Validate(); err != nil {
		exitErr(err.Error())
	}

	ctx := context.Background()

	resumeBytes, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}
	mimeType, err := mimeFromExt(*resumePath)
	if err != nil {
		exitErr(err.Error())
	}

	resumeText, err := extract.TextFromBytes(ctx, resumeBytes, mimeType, filepath.Base(*resumePath))
	if err != nil {
		exitErr(fmt.Sprintf("extract resume text: %v", err))
	}

	jdBytes, err := os.ReadFile(*jdPath)
	if err != nil {
		exitErr(fmt.Sprintf("read job description: %v", err))
	}

	client, err := gemini.NewClient(ctx, cfg.GoogleAPIKey, *model)
	if err != nil {
		exitErr(fmt.Sprintf("gemini client: %v", err))
	}
	defer client.Close()

	svc := &analyses.Service{
		Repo:     analyses.NewMemoryRepo(),
		LLM:      client,
		Provider: "gemini",
		Model:    *model,
	}

	analysis, err := svc.Analyze(ctx, resumeText, string(jdBytes))
	if err != nil {
		exitErr(fmt.Sprintf("analyze: %v", err))
	}

	pretty, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	fmt.Println(string(pretty))
}

func mimeFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf", nil
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	default:
		return "", fmt.Errorf("unsupported resume file type: %s", filepath.Ext(path))
	}
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
