package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/core"
	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/logging"
	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/rules"
	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/xlsx"
)

// RunSummary is the JSON view of a finished validation run.
type RunSummary struct {
	RunID      string `json:"run_id"`
	FileName   string `json:"file_name"`
	IssueCount int    `json:"issue_count"`
	Clean      bool   `json:"clean"`
	Cached     bool   `json:"cached"`
	Duration   string `json:"duration"`
	ReportURL  string `json:"report_url"`
}

func toSummary(result *core.Result) RunSummary {
	return RunSummary{
		RunID:      result.RunID,
		FileName:   result.FileName,
		IssueCount: result.IssueCount(),
		Clean:      result.Clean(),
		Cached:     result.Cached,
		Duration:   result.Duration.String(),
		ReportURL:  "/api/report/" + result.RunID,
	}
}

// handleIndex serves the upload page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleValidate accepts the weekly workbook upload, runs the validation
// battery, and returns a run summary. The full report stays retrievable
// via the report endpoint until the run is evicted.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	logger := logging.FromContext(r.Context())
	logger.Info("workbook received", "file", header.Filename, "bytes", len(data))

	result, err := s.service.Validate(r.Context(), header.Filename, data)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	writeJSON(w, toSummary(result))
}

// handleReport streams a finished run's error summary as a CSV download.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	result, ok := s.service.Run(runID)
	if !ok {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="error_summary.csv"`)

	if err := rules.WriteCSV(w, result.Records); err != nil {
		logging.FromContext(r.Context()).Error("report write failed",
			"run_id", runID, "error", err)
	}
}

// handleReportSummary returns the summary JSON for a finished run.
func (s *Server) handleReportSummary(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	result, ok := s.service.Run(runID)
	if !ok {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, toSummary(result))
}

// handleQueueStatus reports the run limiter state.
func (s *Server) handleQueueStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.service.LimiterStatus())
}

// statusForError maps service errors to HTTP status codes. Unreadable
// files are the client's problem; a structurally valid workbook with the
// wrong sheets is unprocessable.
func statusForError(err error) int {
	var loadErr *xlsx.LoadError
	var missingErr *xlsx.MissingSheetsError
	switch {
	case errors.As(err, &loadErr):
		return http.StatusBadRequest
	case errors.As(err, &missingErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrBusy):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
