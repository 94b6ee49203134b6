package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/paperpress/paperpress-server/internal/paper"
)

// paperRequest is the shared body of the preview and docx endpoints.
type paperRequest struct {
	Settings paper.Settings        `json:"settings"`
	Layout   *paper.LayoutSettings `json:"layout,omitempty"`
	MCQs     []paper.MCQQuestion   `json:"mcqs"`
	Shorts   []paper.ShortQuestion `json:"shorts"`
	Longs    []paper.LongQuestion  `json:"longs"`
}

type validationResponse struct {
	Error    string   `json:"error"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// PreviewPaperHandler composes and renders the HTML artifact. Totals and the
// page estimate travel as response headers so the preview pipeline can show
// them without parsing the document.
func PreviewPaperHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req paperRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		composed, res := paper.Compose(req.Settings, req.Layout, req.MCQs, req.Shorts, req.Longs)
		if composed == nil {
			writeJSON(w, http.StatusBadRequest, validationResponse{
				Error:    "Validation failed",
				Errors:   res.Messages(),
				Warnings: res.WarningMessages(),
			})
			return
		}

		html := paper.RenderPreviewHTML(
			composed.Settings, composed.Layout,
			composed.MCQs, composed.Shorts, composed.Longs,
			composed.Settings.AttemptRules, composed.Settings.CustomMarks,
			composed.Settings.BubblesEnabled(),
		)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Total-Marks", strconv.Itoa(composed.Marks.Total))
		w.Header().Set("X-Page-Estimate", strconv.Itoa(composed.Pages))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
	}
}

// MethodNotAllowed is mounted on GET /preview-paper.
func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Use POST.")
	}
}

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// allowedOrigin reflects the requesting origin when it prefix-matches the
// allow-list, otherwise the first allow-listed origin as a safe default.
func allowedOrigin(r *http.Request, origins []string) string {
	origin := r.Header.Get("Origin")
	if origin != "" {
		for _, allowed := range origins {
			if strings.HasPrefix(origin, allowed) {
				return origin
			}
		}
	}
	if len(origins) > 0 {
		return origins[0]
	}
	return ""
}

// GenerateDocxHandler composes and renders the word-processor artifact.
func GenerateDocxHandler(origins []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req paperRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if res := paper.Validate(req.Settings, req.MCQs, req.Shorts, req.Longs); !res.Valid {
			writeJSON(w, http.StatusBadRequest, validationResponse{
				Error:    "Validation failed",
				Errors:   res.Messages(),
				Warnings: res.WarningMessages(),
			})
			return
		}

		data, err := paper.RenderDocument(req.Settings, req.MCQs, req.Shorts, req.Longs)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", docxContentType)
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", req.Settings.ClassID+"_"+req.Settings.Subject+".docx"))
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin(r, origins))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// DocxPreflightHandler answers the CORS preflight for /generate-docx.
func DocxPreflightHandler(origins []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", allowedOrigin(r, origins))
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Max-Age", "86400")
		w.WriteHeader(http.StatusNoContent)
	}
}
