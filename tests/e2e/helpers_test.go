//go:build e2e

package e2e_test

import (
	"bytes"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/aiyyappann/EchoVision/internal/adapter/pdftext"
	docrepo "github.com/aiyyappann/EchoVision/internal/adapter/postgres/document"
	"github.com/aiyyappann/EchoVision/internal/adapter/postgres/testhelper"
	"github.com/aiyyappann/EchoVision/internal/adapter/provider/anthropic"
	"github.com/aiyyappann/EchoVision/internal/adapter/provider/openai"
	"github.com/aiyyappann/EchoVision/internal/adapter/render/braillepdf"
	"github.com/aiyyappann/EchoVision/internal/adapter/storage/local"
	"github.com/aiyyappann/EchoVision/internal/braille"
	"github.com/aiyyappann/EchoVision/internal/config"
	"github.com/aiyyappann/EchoVision/internal/service/document"
	"github.com/aiyyappann/EchoVision/internal/transport/middleware"
	"github.com/aiyyappann/EchoVision/internal/transport/rest"
	"github.com/aiyyappann/EchoVision/internal/transport/web"
)

// fakeSummary is what the stub model returns for every document.
const fakeSummary = "The cat sat."

// fakeSummaryBraille is fakeSummary in compat Braille.
const fakeSummaryBraille = "⠠⠮ ⠉⠁⠞ ⠎⠁⠞⠲"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// Model stubs. Both speak just enough of the provider wire format.
// ---------------------------------------------------------------------------

func newAnthropicStub(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_e2e", "type": "message", "role": "assistant", "model": "claude-test",
			"content": [{"type": "text", "text": "` + fakeSummary + `"}],
			"stop_reason": "end_turn", "stop_sequence": null,
			"usage": {"input_tokens": 10, "output_tokens": 4}
		}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newSpeechStub(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-e2e-audio"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper) and stub model servers.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	dir := t.TempDir()

	uploads, err := local.New(dir+"/uploads", logger)
	require.NoError(t, err)
	audio, err := local.New(dir+"/audio", logger)
	require.NoError(t, err)

	renderer, err := braillepdf.New(braillepdf.Config{FontSize: 12, LineHeight: 10, Margin: 10, Title: "e2e"}, logger)
	require.NoError(t, err)

	// 3. External providers.
	summarizer := anthropic.NewSummarizer(anthropic.Config{
		APIKey:        "test-key",
		BaseURL:       newAnthropicStub(t).URL,
		Model:         "claude-test",
		MaxTokens:     256,
		MaxInputChars: 10000,
		Timeout:       10 * time.Second,
	}, logger)
	speech := openai.NewSynthesizer(openai.SpeechConfig{
		ClientConfig: openai.ClientConfig{APIKey: "sk-test", BaseURL: newSpeechStub(t).URL + "/v1"},
		Model:        "tts-1",
		Voice:        "alloy",
	}, logger)

	// 4. Service.
	svc := document.NewService(
		logger,
		document.Config{MaxUploadBytes: 1 << 20},
		braille.New(),
		pdftext.New(logger),
		summarizer,
		docrepo.New(pool),
		uploads,
		audio,
		renderer,
		document.WithSynthesizer(speech),
	)

	// 5. Handlers.
	webHandler := web.NewHandler(svc, 1<<20, logger)
	apiHandler := rest.NewAPIHandler(svc, logger)
	healthHandler := rest.NewHealthHandler("test-version", rest.Component{Name: "database", Pinger: pool})

	// 6. Mux.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", webHandler.Index)
	mux.HandleFunc("POST /{$}", webHandler.Upload)
	mux.HandleFunc("GET /download_braille/{pdf_filename}", webHandler.DownloadBraille)
	mux.HandleFunc("GET "+document.AudioURLPrefix+"{name}", webHandler.Audio)
	mux.HandleFunc("GET /api/documents", apiHandler.ListDocuments)
	mux.HandleFunc("POST /api/braille", apiHandler.Transcode)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// 7. Middleware chain.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         86400,
		}),
	)(mux)

	// 8. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// buildPDF renders a one page PDF holding text.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.Text(50, 100, text)

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

// upload posts content as the "pdf" form field.
func (ts *testServer) upload(t *testing.T, filename string, content []byte) *http.Response {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("pdf", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
