package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/aiyyappann/EchoVision/internal/domain"
	"github.com/aiyyappann/EchoVision/internal/service/document"
)

type documentService interface {
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error)
	Transcode(ctx context.Context, input document.TranscodeInput) (string, error)
}

// APIHandler serves the JSON endpoints.
type APIHandler struct {
	docs documentService
	log  *slog.Logger
}

// NewAPIHandler creates an APIHandler.
func NewAPIHandler(docs documentService, logger *slog.Logger) *APIHandler {
	return &APIHandler{docs: docs, log: logger.With("handler", "api")}
}

type documentResponse struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	SizeBytes    int64     `json:"size_bytes"`
	PageCount    int       `json:"page_count"`
	SummaryModel string    `json:"summary_model,omitempty"`
	AudioFile    string    `json:"audio_file,omitempty"`
	BrailleURL   string    `json:"braille_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type listResponse struct {
	Documents []documentResponse `json:"documents"`
	Total     int                `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// ListDocuments handles GET /api/documents?q=&limit=&offset=.
func (h *APIHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var fieldErrs []domain.FieldError
	limit, ok := intParam(query.Get("limit"))
	if !ok {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "limit", Message: "must be an integer"})
	}
	offset, ok := intParam(query.Get("offset"))
	if !ok {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "offset", Message: "must be an integer"})
	}
	if len(fieldErrs) > 0 {
		writeDomainError(w, domain.NewValidationErrors(fieldErrs))
		return
	}

	filter := domain.DocumentFilter{Search: query.Get("q"), Limit: limit, Offset: offset}
	filter.Normalize()

	docs, total, err := h.docs.List(r.Context(), filter)
	if err != nil {
		h.log.ErrorContext(r.Context(), "list documents", slog.String("error", err.Error()))
		writeDomainError(w, err)
		return
	}

	resp := listResponse{
		Documents: make([]documentResponse, 0, len(docs)),
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, documentResponse{
			ID:           d.ID,
			Filename:     d.Filename,
			SizeBytes:    d.SizeBytes,
			PageCount:    d.PageCount,
			SummaryModel: d.SummaryModel,
			AudioFile:    d.AudioFile,
			BrailleURL:   "/download_braille/" + d.Filename,
			CreatedAt:    d.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type transcodeRequest struct {
	Text           string `json:"text"`
	Scheme         string `json:"scheme"`
	PreserveLayout bool   `json:"preserve_layout"`
}

type transcodeResponse struct {
	Braille string `json:"braille"`
}

// Transcode handles POST /api/braille.
func (h *APIHandler) Transcode(w http.ResponseWriter, r *http.Request) {
	var req transcodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	out, err := h.docs.Transcode(r.Context(), document.TranscodeInput{
		Text:           req.Text,
		Scheme:         req.Scheme,
		PreserveLayout: req.PreserveLayout,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transcodeResponse{Braille: out})
}

// intParam parses an optional integer query parameter. Empty means zero.
func intParam(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
