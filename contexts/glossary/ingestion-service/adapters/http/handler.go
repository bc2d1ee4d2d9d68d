package http

import (
	"context"
	"log/slog"

	"termbank/contexts/glossary/ingestion-service/application"
	"termbank/contexts/glossary/ingestion-service/ports"
	transporthttp "termbank/contexts/glossary/ingestion-service/transport/http"
)

// Handler adapts upload ingestion for HTTP transport. Multipart parsing
// happens in the platform HTTP server; the handler sees raw bytes plus the
// declared media type.
type Handler struct {
	Ingestion application.Service
	Logger    *slog.Logger
}

func NewHandler(ingestion application.Service, logger *slog.Logger) Handler {
	return Handler{Ingestion: ingestion, Logger: logger}
}

// UploadHandler godoc
// @Summary      Submit a typed definition
// @Description  Accepts a typed definition for a term, creating the term on first sight. The candidate starts pending with weight 0.5.
// @Tags         upload
// @Accept       json
// @Produce      json
// @Param        X-User-Id  header  string                       false  "Submitter id, defaults to anonymous"
// @Param        request    body    transporthttp.UploadRequest  true   "Submission"
// @Success      201  {object}  transporthttp.UploadResponse
// @Failure      400  {object}  transporthttp.ErrorResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/upload [post]
func (h Handler) UploadHandler(ctx context.Context, userID string, req transporthttp.UploadRequest) (transporthttp.UploadResponse, error) {
	receipt, err := h.Ingestion.Upload(ctx, application.UploadCommand{
		Term:       req.Term,
		Definition: req.Definition,
		Source:     req.Source,
		UserID:     userID,
	})
	if err != nil {
		return transporthttp.UploadResponse{}, err
	}
	return toUploadResponse(receipt), nil
}

// UploadFileHandler godoc
// @Summary      Submit a definition from a file
// @Description  Extracts text from the uploaded file and accepts it as a definition candidate. Extraction failures create nothing.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-User-Id  header      string  false  "Submitter id, defaults to anonymous"
// @Param        term       formData    string  true   "Term the definition belongs to"
// @Param        file       formData    file    true   "Definition file"
// @Success      201  {object}  transporthttp.UploadResponse
// @Failure      400  {object}  transporthttp.ErrorResponse
// @Failure      415  {object}  transporthttp.ErrorResponse
// @Failure      500  {object}  transporthttp.ErrorResponse
// @Router       /api/upload/file [post]
func (h Handler) UploadFileHandler(ctx context.Context, userID string, cmd application.UploadFileCommand) (transporthttp.UploadResponse, error) {
	cmd.UserID = userID
	receipt, err := h.Ingestion.UploadFile(ctx, cmd)
	if err != nil {
		return transporthttp.UploadResponse{}, err
	}
	return toUploadResponse(receipt), nil
}

func toUploadResponse(receipt ports.UploadReceipt) transporthttp.UploadResponse {
	return transporthttp.UploadResponse{
		Slug:        receipt.Slug,
		Term:        receipt.TermName,
		CandidateID: receipt.CandidateID,
		Weight:      receipt.Weight,
		Status:      string(receipt.Status),
	}
}
