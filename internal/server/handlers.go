package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/export"
	"github.com/jonathan/resume-ranker/internal/fetch"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/types"
)

// HealthResponse reports liveness plus compiled reference data sizes.
type HealthResponse struct {
	Status  string `json:"status"`
	Skills  int    `json:"skills"`
	Sectors int    `json:"sectors"`
}

// UploadResponse confirms a stored upload.
type UploadResponse struct {
	ResumeID   string `json:"resume_id"`
	Filename   string `json:"filename"`
	TextLength int    `json:"text_length"`
}

// ResumeListResponse lists the uploads currently in the store.
type ResumeListResponse struct {
	Resumes []ResumeInfo `json:"resumes"`
	Count   int          `json:"count"`
}

// AnalyzeJobRequest ranks every uploaded resume against one job, given
// either the description text or a posting URL to fetch it from.
type AnalyzeJobRequest struct {
	JobDescription string `json:"job_description,omitempty"`
	JobURL         string `json:"job_url,omitempty"`
	TopN           int    `json:"top_n,omitempty"`
}

// AnalyzeJobResponse carries the ranking plus the id it is stored under.
type AnalyzeJobResponse struct {
	ResultID string                `json:"result_id"`
	Result   *types.AnalysisResult `json:"result"`
}

// handleHealth reports server liveness and taxonomy counts.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Skills:  s.tax.Len(),
		Sectors: s.vocab.Len(),
	})
}

// handleAnalyze runs the engine contract directly: AnalyzeRequest in,
// AnalysisResult out, nothing stored.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.pipeline.Run(r.Context(), &req)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleUploadResume extracts text from a multipart file and stores it
// under a fresh resume id.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.respondError(w, err)
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	mimeType, ok := uploadMime(header)
	if !ok {
		s.errorResponse(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("unsupported file type %q (supported extensions: %s)",
				header.Filename, strings.Join(ingestion.SupportedExtensions(), ", ")))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, err)
		return
	}

	text, err := ingestion.ExtractText(mimeType, data)
	if err != nil {
		s.respondError(w, err)
		return
	}

	stored, err := s.store.AddResume(filepath.Base(header.Filename), ingestion.CleanText(text))
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.log.Info("resume uploaded",
		zap.String("resume_id", stored.ID),
		zap.String("filename", stored.Filename),
		zap.Int("text_length", len(stored.Text)))

	s.jsonResponse(w, http.StatusCreated, UploadResponse{
		ResumeID:   stored.ID,
		Filename:   stored.Filename,
		TextLength: len(stored.Text),
	})
}

// uploadMime resolves the extraction MIME type for an uploaded part,
// preferring the declared Content-Type and falling back to the filename
// extension (multipart clients often declare application/octet-stream).
func uploadMime(header *multipart.FileHeader) (string, bool) {
	if ct := header.Header.Get("Content-Type"); ingestion.SupportedMime(ct) {
		return ct, true
	}
	return ingestion.MimeForExtension(filepath.Ext(header.Filename))
}

// handleListResumes lists the stored uploads in upload order.
func (s *Server) handleListResumes(w http.ResponseWriter, _ *http.Request) {
	infos := s.store.ListResumes()
	s.jsonResponse(w, http.StatusOK, ResumeListResponse{Resumes: infos, Count: len(infos)})
}

// handleClearResumes empties the upload store.
func (s *Server) handleClearResumes(w http.ResponseWriter, _ *http.Request) {
	removed := s.store.ClearResumes()
	s.log.Info("upload store cleared", zap.Int("removed", removed))
	s.jsonResponse(w, http.StatusOK, map[string]int{"cleared": removed})
}

// handleAnalyzeJob ranks every uploaded resume against one job
// description, fetching it first when a posting URL is given, and stores
// the result for later retrieval and download.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.JobDescription == "" && req.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "either job_description or job_url is required")
		return
	}
	if req.JobDescription != "" && req.JobURL != "" {
		s.errorResponse(w, http.StatusBadRequest, "provide either job_description or job_url, not both")
		return
	}

	jobText := req.JobDescription
	if req.JobURL != "" {
		text, err := ingestion.IngestFromURL(r.Context(), req.JobURL, s.fetchOptions())
		if err != nil {
			s.respondError(w, err)
			return
		}
		jobText = text
	}

	resumes := s.store.ResumeInputs()
	if len(resumes) == 0 {
		s.errorResponse(w, http.StatusBadRequest,
			"no resumes uploaded: upload resumes before requesting an analysis")
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = s.cfg.TopN
	}

	result, err := s.pipeline.Run(r.Context(), &types.AnalyzeRequest{
		JobDescription: jobText,
		Resumes:        resumes,
		TopN:           topN,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	resultID := s.store.AddResult(result)
	s.log.Info("job analyzed",
		zap.String("result_id", resultID),
		zap.Int("candidates", result.TotalCandidates))

	s.jsonResponse(w, http.StatusOK, AnalyzeJobResponse{ResultID: resultID, Result: result})
}

// fetchOptions builds job posting fetch settings from the server config.
func (s *Server) fetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	if s.cfg.Fetch.Timeout > 0 {
		opts.Timeout = s.cfg.Fetch.Timeout
	}
	if s.cfg.Fetch.UserAgent != "" {
		opts.UserAgent = s.cfg.Fetch.UserAgent
	}
	opts.UseBrowser = s.cfg.Fetch.UseBrowser
	opts.Logger = s.log
	return opts
}

// handleRankSingle scores one resume, supplied inline or by stored id,
// against one job description.
func (s *Server) handleRankSingle(w http.ResponseWriter, r *http.Request) {
	var req types.SingleRankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resumeID := "uploaded_resume"
	resumeText := req.ResumeText
	switch {
	case req.ResumeID != "":
		stored, ok := s.store.Resume(req.ResumeID)
		if !ok {
			s.respondError(w, &ErrNotFound{Kind: "resume", ID: req.ResumeID})
			return
		}
		resumeID = stored.Filename
		resumeText = stored.Text
	case req.ResumeText == "":
		s.errorResponse(w, http.StatusBadRequest, "either resume_text or resume_id is required")
		return
	}

	candidate, err := s.pipeline.RankSingle(r.Context(), req.JobDescription, resumeID, resumeText)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleGetResult returns a stored analysis.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	result, ok := s.store.Result(id)
	if !ok {
		s.respondError(w, &ErrNotFound{Kind: "result", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleDownloadResult streams a stored analysis as a JSON or CSV
// attachment.
func (s *Server) handleDownloadResult(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	result, ok := s.store.Result(id)
	if !ok {
		s.respondError(w, &ErrNotFound{Kind: "result", ID: id})
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="ranking_results.json"`)
		if err := export.WriteJSON(w, result); err != nil {
			s.log.Error("failed to write JSON download", zap.Error(err))
		}
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="detailed_resume_ranking.csv"`)
		if err := export.WriteCSV(w, result); err != nil {
			s.log.Error("failed to write CSV download", zap.Error(err))
		}
	default:
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("invalid format %q: use 'json' or 'csv'", format))
	}
}
