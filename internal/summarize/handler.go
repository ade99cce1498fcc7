package summarize

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/server/respond"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/util"
)

const defaultFilename = "document.pdf"

// Handler exposes the summarization service over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the summarization endpoint.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/ai/v2/summarize", h.Summarize)
}

// Summarize handles POST /ai/v2/summarize. The request carries the PDF as a
// base64 string, optionally with a data-URL prefix. Malformed input fails the
// request; everything past decoding degrades instead.
func (h *Handler) Summarize(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.JSON(c, http.StatusBadRequest, Response{OK: false, Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		respond.JSON(c, http.StatusBadRequest, Response{OK: false, Error: "missing 'content' (base64)"})
		return
	}

	payload := req.Content
	if idx := strings.LastIndex(payload, ","); idx >= 0 {
		// data:application/pdf;base64,<payload>
		payload = payload[idx+1:]
	}
	pdfBytes, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		respond.JSON(c, http.StatusBadRequest, Response{OK: false, Error: "invalid base64 content"})
		return
	}

	filename, err := util.SanitizeFileName(req.Filename)
	if err != nil || filename == "" {
		filename = defaultFilename
	}

	resp := h.svc.Summarize(c.Request.Context(), filename, pdfBytes, req)

	// Surface engine and page count to the request logger.
	c.Set("engine", resp.Engine)
	if resp.PagesUsed != nil {
		c.Set("pagesUsed", *resp.PagesUsed)
	}

	respond.OK(c, resp)
}
