package llm

import "strings"

// The three response keys the backend is instructed to emit. The parser in
// internal/analyses reads the same keys; keep them in sync.
const (
	KeyMatch    = "JD Match"
	KeyKeywords = "MissingKeywords"
	KeySummary  = "Profile Summary"
)

const promptTemplate = `Act as an expert ATS (Applicant Tracking System) specialist with deep expertise in technology, software engineering, data science, and analytics hiring. Evaluate the following resume against the job description. The job market is highly competitive; provide the best possible assistance for improving the resume.

Resume:
{{RESUME_TEXT}}

Job Description:
{{JOB_DESCRIPTION}}

Respond with a single JSON object containing exactly these three keys and nothing else:
- "JD Match": the overall match between resume and job description as a percentage string, e.g. "75%"
- "MissingKeywords": an array of keyword strings present in the job description but missing from the resume (empty array if none)
- "Profile Summary": a string summarizing the candidate profile and concrete suggestions

Output JSON only. No markdown, no commentary.`

// BuildPrompt combines resume text and job description into the analysis
// instruction. It is a pure function: identical inputs always produce a
// byte-identical prompt, so tests can assert on prompt content without
// calling the backend.
func BuildPrompt(resumeText, jobDescription string) string {
	replacer := strings.NewReplacer(
		"{{RESUME_TEXT}}", resumeText,
		"{{JOB_DESCRIPTION}}", jobDescription,
	)
	return replacer.Replace(promptTemplate)
}
