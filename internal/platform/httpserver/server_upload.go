package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"termbank/contexts/glossary/ingestion-service/application"
	ingestiondomainerrors "termbank/contexts/glossary/ingestion-service/domain/errors"
	ingestionhttp "termbank/contexts/glossary/ingestion-service/transport/http"
)

// maxUploadBytes bounds an upload body.
const maxUploadBytes = 16 << 20

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	var req ingestionhttp.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIngestionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.ingestion.Handler.UploadHandler(r.Context(), resolveUserID(r), req)
	if err != nil {
		writeIngestionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeIngestionError(w, http.StatusBadRequest, "invalid_multipart", "request body must be valid multipart form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeIngestionError(w, http.StatusBadRequest, "file_required", "file part is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeIngestionError(w, http.StatusBadRequest, "unreadable_file", "file part could not be read")
		return
	}

	cmd := application.UploadFileCommand{
		Term:     r.FormValue("term"),
		Filename: header.Filename,
		MIMEType: resolveUploadMIMEType(header.Header.Get("Content-Type"), header.Filename),
		Content:  content,
		Source:   r.FormValue("source"),
	}

	resp, err := s.ingestion.Handler.UploadFileHandler(r.Context(), resolveUserID(r), cmd)
	if err != nil {
		writeIngestionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// resolveUploadMIMEType prefers the declared part content type and falls
// back to the filename extension when the client sent none.
func resolveUploadMIMEType(declared string, filename string) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
		return byExt
	}
	return declared
}

func writeIngestionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ingestionhttp.ErrorResponse{Code: code, Message: message})
}

func writeIngestionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ingestiondomainerrors.ErrTermRequired):
		writeIngestionError(w, http.StatusBadRequest, "term_required", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrDefinitionTooShort):
		writeIngestionError(w, http.StatusBadRequest, "definition_too_short", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrEmptyFile):
		writeIngestionError(w, http.StatusBadRequest, "empty_file", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrUnsupportedMediaType):
		writeIngestionError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrNoUsableText):
		writeIngestionError(w, http.StatusBadRequest, "no_usable_text", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrExtractionFailed):
		writeIngestionError(w, http.StatusBadRequest, "extraction_failed", err.Error())
	default:
		writeIngestionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
