package analyses

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"smartats-backend/internal/extract"
	"smartats-backend/internal/shared/server/respond"
	"smartats-backend/internal/shared/util"
)

const rawDetailLimit = 2048 // bytes of raw backend output exposed in error details

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.create)
	rg.GET("/analyses", h.list)
	rg.GET("/analyses/:id", h.get)
}

func (h *Handler) create(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}

	jobDescription := strings.TrimSpace(c.PostForm("job_description"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "job description is required", nil)
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume file is required", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid resume file name", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read resume file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read resume file", nil)
		return
	}

	resumeText, err := extract.TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileName)
	if err != nil {
		if errors.Is(err, extract.ErrEmptyDocument) {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume contains no extractable text", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume must be a PDF or DOCX file", nil)
		return
	}

	analysis, err := h.Svc.Analyze(c.Request.Context(), resumeText, jobDescription)
	if err != nil {
		var backendErr *BackendError
		var malformedErr *MalformedResponseError
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
		case errors.As(err, &backendErr):
			respond.Error(c, http.StatusBadGateway, ErrorCodeBackend, "the analysis backend failed; please try again", nil)
		case errors.As(err, &malformedErr):
			respond.Error(c, http.StatusBadGateway, ErrorCodeMalformedResponse, "the analysis backend returned an unexpected format", gin.H{
				"rawResponse": truncate(malformedErr.Raw, rawDetailLimit),
			})
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to run analysis", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusCreated, analysis)
}

func (h *Handler) get(c *gin.Context) {
	analysisID := c.Param("id")
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "analysis id is required", nil)
		return
	}

	analysis, err := h.Svc.Get(c.Request.Context(), analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to fetch analysis", nil)
		}
		return
	}

	respond.OK(c, analysis)
}

func (h *Handler) list(c *gin.Context) {
	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	analyses, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to list analyses", nil)
		return
	}

	items := make([]gin.H, 0, len(analyses))
	for _, a := range analyses {
		item := gin.H{
			"id":        a.ID,
			"status":    a.Status,
			"model":     a.Model,
			"createdAt": a.CreatedAt,
		}
		if a.Status == StatusCompleted && a.Result != nil {
			item["matchScore"] = a.Result.MatchScore
			item["scoreDegraded"] = a.Result.ScoreError != nil
		}
		items = append(items, item)
	}

	respond.OK(c, gin.H{"analyses": items})
}

func parseQueryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
