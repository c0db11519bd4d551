package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/viant/gpmldiff/delta"
	"github.com/viant/gpmldiff/diff/output"
	"github.com/viant/gpmldiff/gpml"
	"github.com/viant/gpmldiff/model"
	"github.com/viant/gpmldiff/patch"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// diff compares multipart "old" and "new" pathways, "format" selects rendering
func (s *Service) diff(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.config.Service.MaxUploadSize); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	old, err := s.pathway(r, "old")
	if err != nil {
		s.writeError(w, statusOf(err), err)
		return
	}
	updated, err := s.pathway(r, "new")
	if err != nil {
		s.writeError(w, statusOf(err), err)
		return
	}
	format := r.FormValue("format")
	if format == "" {
		format = s.config.Output.Format
	}
	buffer := &bytes.Buffer{}
	out, err := output.New(format, buffer, old, updated, &output.Options{OldTitle: fileName(r, "old"), NewTitle: fileName(r, "new")})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	result := s.differ.Compare(old, updated)
	if err = result.Write(output.Multi{out, s.stats}); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", output.ContentType(format))
	w.Header().Set("X-Diff-Cost", fmt.Sprint(result.Cost()))
	_, _ = buffer.WriteTo(w)
}

// patch applies multipart "delta" onto "pathway", "reverse" undoes the delta
func (s *Service) patch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.config.Service.MaxUploadSize); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	pathway, err := s.pathway(r, "pathway")
	if err != nil {
		s.writeError(w, statusOf(err), err)
		return
	}
	file, _, err := r.FormFile("delta")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("missing delta: %w", err))
		return
	}
	defer file.Close()
	p, err := patch.Read(file, patch.WithConfig(s.config), patch.WithLogger(s.logger))
	if err == nil && r.FormValue("reverse") == "true" {
		p, err = p.Reverse()
	}
	if err != nil {
		s.writeError(w, statusOf(err), err)
		return
	}
	report, err := p.Apply(pathway)
	if err != nil {
		s.writeError(w, statusOf(err), err)
		return
	}
	data, err := gpml.Marshal(pathway)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("X-Patch-Report", report.String())
	_, _ = w.Write(data)
}

func (s *Service) pathway(r *http.Request, field string) (*model.Pathway, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%w: missing %v: %v", errBadRequest, field, err)
	}
	defer file.Close()
	pathway, err := gpml.Read(file)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", field, err)
	}
	return pathway, nil
}

var errBadRequest = errors.New("bad request")

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, gpml.ErrInvalidDocument),
		errors.Is(err, delta.ErrInvalidDelta),
		errors.Is(err, patch.ErrUnsupportedProperty):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fileName(r *http.Request, field string) string {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return field
	}
	return r.MultipartForm.File[field][0].Filename
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to write response", zap.Error(err))
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
