// Package braillepdf lays Braille text out into A4 PDF pages.
package braillepdf

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"
	gofont "github.com/go-text/typesetting/font"

	"github.com/aiyyappann/EchoVision/internal/braille"
)

//go:embed fonts/DejaVuSansCondensed.ttf
var defaultFont []byte

const fontFamily = "braille"

// ErrFontCoverage is returned when the font lacks glyphs for Braille cells
// present in the text.
var ErrFontCoverage = errors.New("font does not cover braille patterns")

// Config holds layout settings. Sizes are in millimetres except FontSize (points).
type Config struct {
	FontPath   string
	FontSize   float64
	LineHeight float64
	Margin     float64
	Title      string
}

// Renderer produces Braille PDFs. It is safe for concurrent use.
type Renderer struct {
	cfg  Config
	font []byte
	face *gofont.Face
	log  *slog.Logger
}

// New loads the configured font, or the embedded DejaVu Sans Condensed when
// FontPath is empty.
func New(cfg Config, logger *slog.Logger) (*Renderer, error) {
	data := defaultFont
	if cfg.FontPath != "" {
		b, err := os.ReadFile(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", cfg.FontPath, err)
		}
		data = b
	}

	face, err := gofont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	if cfg.Title == "" {
		cfg.Title = "Braille document"
	}

	return &Renderer{
		cfg:  cfg,
		font: data,
		face: face,
		log:  logger.With("adapter", "braillepdf"),
	}, nil
}

// Coverage returns the distinct printable runes of text the font has no glyph
// for, in ascending order.
func (r *Renderer) Coverage(text string) []rune {
	seen := make(map[rune]struct{})
	var missing []rune
	for _, c := range text {
		if unicode.IsSpace(c) || unicode.IsControl(c) || c == braille.BlockStart {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		if _, ok := r.face.NominalGlyph(c); !ok {
			missing = append(missing, c)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

// Render lays text into pages and returns the PDF bytes. Runes outside the
// Braille block that the font lacks are rendered blank.
func (r *Renderer) Render(ctx context.Context, text string) ([]byte, error) {
	var blank []rune
	for _, c := range r.Coverage(text) {
		if braille.InBlock(c) {
			return nil, fmt.Errorf("%w: U+%04X", ErrFontCoverage, c)
		}
		blank = append(blank, c)
	}
	if len(blank) > 0 {
		r.log.WarnContext(ctx, "font lacks glyphs", slog.Int("count", len(blank)), slog.String("sample", string(blank[:min(len(blank), 8)])))
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.cfg.Title, true)
	pdf.SetCreator("EchoVision", true)
	pdf.SetMargins(r.cfg.Margin, r.cfg.Margin, r.cfg.Margin)
	pdf.SetAutoPageBreak(true, r.cfg.Margin)
	pdf.AddUTF8FontFromBytes(fontFamily, "", r.font)
	pdf.SetFont(fontFamily, "", r.cfg.FontSize)
	pdf.AddPage()
	pdf.MultiCell(0, r.cfg.LineHeight, normalizeText(text), "", "L", false)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("layout braille pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write braille pdf: %w", err)
	}

	r.log.DebugContext(ctx, "braille pdf rendered",
		slog.Int("pages", pdf.PageCount()),
		slog.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

var textNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\t", "    ")

func normalizeText(s string) string {
	return textNormalizer.Replace(s)
}
