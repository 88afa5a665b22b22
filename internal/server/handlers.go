package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/jonathan/resume-forge/internal/eligibility"
	"github.com/jonathan/resume-forge/internal/fetch"
	"github.com/jonathan/resume-forge/internal/pipeline"
	"github.com/jonathan/resume-forge/internal/profiles"
	"github.com/jonathan/resume-forge/internal/rendering"
	"github.com/jonathan/resume-forge/internal/types"
)

// GenerateRequest represents the request body for /generate. Profile names a
// stored profile; exactly one of JD (inline posting text) or JDURL (a page
// to fetch the posting from) must be set, with JD taking precedence.
type GenerateRequest struct {
	Profile string `json:"profile"`
	JD      string `json:"jd,omitempty"`
	JDURL   string `json:"jd_url,omitempty"`
}

// handleGenerate runs the full pipeline and streams back the PDF.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Profile == "" {
		http.Error(w, "Profile required", http.StatusBadRequest)
		return
	}
	if req.JD == "" && req.JDURL == "" {
		http.Error(w, "Job description required", http.StatusBadRequest)
		return
	}

	posting := req.JD
	if posting == "" {
		fetched, err := fetch.Posting(r.Context(), req.JDURL, true)
		if err != nil {
			log.Printf("Posting fetch failed: %v", err)
			s.generateError(w, err)
			return
		}
		posting = fetched
	}

	profile, err := s.store.Load(req.Profile)
	if err != nil {
		var notFound *profiles.NotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, fmt.Sprintf("Profile %q not found", req.Profile), http.StatusNotFound)
			return
		}
		s.generateError(w, err)
		return
	}

	result, err := pipeline.Run(r.Context(), pipeline.Options{
		Client:     s.client,
		Profile:    profile,
		Posting:    posting,
		Generation: s.generation,
	})
	if err != nil {
		s.generateError(w, err)
		return
	}

	html, err := rendering.Render(result.Resume)
	if err != nil {
		s.generateError(w, err)
		return
	}

	pdf, err := s.exporter.Export(r.Context(), html)
	if err != nil {
		s.generateError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", pdfFilename(result.Resume)))
	w.Header().Set("X-Prompt-Tokens", strconv.Itoa(result.Usage.PromptTokens))
	w.Header().Set("X-Completion-Tokens", strconv.Itoa(result.Usage.CompletionTokens))
	w.Header().Set("X-Total-Tokens", strconv.Itoa(result.Usage.TotalTokens))
	w.Header().Set("X-Cached-Tokens", strconv.Itoa(result.Usage.CachedTokens))

	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// generateError maps a pipeline failure onto the wire contract: rejections
// carry their reason code, everything else is a JSON server error with the
// stack withheld in production.
func (s *Server) generateError(w http.ResponseWriter, err error) {
	var rejection *eligibility.RejectionError
	if errors.As(err, &rejection) {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{
			"error":        rejection.Message,
			"locationType": string(rejection.Reason),
		})
		return
	}

	log.Printf("PDF generation error: %v", err)
	body := map[string]any{
		"error":   "PDF generation failed",
		"message": err.Error(),
	}
	if !s.production {
		body["details"] = string(debug.Stack())
	}
	s.jsonResponse(w, HTTPStatus(err), body)
}

// pdfFilename builds the download name <Name>_<Company>_<JobTitle>.pdf with
// whitespace in the candidate name collapsed to underscores.
func pdfFilename(resume *types.MergedResume) string {
	name := strings.Join(strings.Fields(resume.Name), "_")
	return fmt.Sprintf("%s_%s_%s.pdf", name, resume.Company, resume.JobTitle)
}
