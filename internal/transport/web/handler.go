// Package web serves the HTML upload page, the Braille PDF download and the
// generated audio.
package web

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/aiyyappann/EchoVision/internal/domain"
	"github.com/aiyyappann/EchoVision/internal/service/document"
)

const (
	msgInvalidFile    = "Invalid file type. Only PDF files are allowed."
	msgTooLarge       = "File too large."
	msgProcessFailed  = "An error occurred while processing your request."
	msgFileNotFound   = "File not found."
	msgDownloadFailed = "Failed to generate Braille PDF."

	// multipartSlack covers boundaries and headers around the file part.
	multipartSlack = 1 << 20
	// maxMemory is the part of a multipart form kept in memory. Larger files
	// spill to temporary files.
	maxMemory = 8 << 20
)

type documentService interface {
	Process(ctx context.Context, input document.UploadInput) (*domain.ProcessedDocument, error)
	ExportBraille(ctx context.Context, filename string) (*domain.BrailleFile, error)
	OpenAudio(ctx context.Context, name string) (*os.File, error)
}

// Handler serves the browser facing routes.
type Handler struct {
	docs           documentService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewHandler creates a Handler. maxUploadBytes caps the PDF size.
func NewHandler(docs documentService, maxUploadBytes int64, logger *slog.Logger) *Handler {
	return &Handler{
		docs:           docs,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "web"),
	}
}

// Index handles GET / with the empty upload form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pageData{})
}

// Upload handles POST /. The file is read from the "pdf" field, falling back
// to "pdf_file".
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartSlack)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, msgTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		h.log.WarnContext(ctx, "invalid upload form", slog.String("error", err.Error()))
		http.Error(w, msgInvalidFile, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("pdf")
	if errors.Is(err, http.ErrMissingFile) {
		file, header, err = r.FormFile("pdf_file")
	}
	if err != nil {
		h.log.WarnContext(ctx, "invalid file upload attempt", slog.String("error", err.Error()))
		http.Error(w, msgInvalidFile, http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.docs.Process(ctx, document.UploadInput{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFileType), errors.Is(err, domain.ErrValidation):
			h.log.WarnContext(ctx, "invalid file upload attempt",
				slog.String("filename", header.Filename),
				slog.String("error", err.Error()),
			)
			http.Error(w, msgInvalidFile, http.StatusBadRequest)
		case errors.Is(err, domain.ErrFileTooLarge):
			http.Error(w, msgTooLarge, http.StatusRequestEntityTooLarge)
		default:
			h.log.ErrorContext(ctx, "process upload",
				slog.String("filename", header.Filename),
				slog.String("error", err.Error()),
			)
			http.Error(w, msgProcessFailed, http.StatusInternalServerError)
		}
		return
	}

	h.renderPage(w, r, pageData{Result: &resultData{
		Filename:       result.Document.Filename,
		SummaryHTML:    renderSummary(result.Summary),
		SummaryBraille: result.SummaryBraille,
		AudioURL:       result.AudioURL,
		DownloadURL:    "/download_braille/" + url.PathEscape(result.Document.Filename),
	}})
}

// DownloadBraille handles GET /download_braille/{pdf_filename}.
func (h *Handler) DownloadBraille(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("pdf_filename")

	out, err := h.docs.ExportBraille(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.WarnContext(ctx, "braille source not found", slog.String("filename", name))
			http.Error(w, msgFileNotFound, http.StatusNotFound)
			return
		}
		h.log.ErrorContext(ctx, "export braille",
			slog.String("filename", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, msgDownloadFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": out.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Content)))
	w.WriteHeader(http.StatusOK)
	w.Write(out.Content) //nolint:errcheck
}

// Audio handles GET /static/audio/{name}. Range requests are supported.
func (h *Handler) Audio(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	f, err := h.docs.OpenAudio(r.Context(), name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.log.ErrorContext(r.Context(), "open audio", slog.String("name", name), slog.String("error", err.Error()))
		}
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.log.ErrorContext(r.Context(), "stat audio", slog.String("name", name), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeContent(w, r, name, info.ModTime(), f)
}

// renderPage executes the page into a buffer first so a template error can
// still produce a clean 500.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page", slog.String("error", err.Error()))
		http.Error(w, msgProcessFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}
