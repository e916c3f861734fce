// Package pdftext extracts plain text from PDF files for transcoding.
// Each page is split into a left and a right half so two-column layouts
// read column by column instead of line by line across the gutter.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/aiyyappann/EchoVision/internal/domain"
)

// ErrExtraction is returned when a file cannot be parsed as a PDF.
var ErrExtraction = errors.New("pdf extraction failed")

const (
	// letterWidth is used when a page has no usable MediaBox.
	letterWidth = 612.0

	// xTolerance is the horizontal gap in points that separates two words.
	xTolerance = 3.0
	// yTolerance is the vertical distance in points within which glyphs share a line.
	yTolerance = 3.0
)

// Extractor reads text from PDF files.
type Extractor struct {
	log *slog.Logger
}

// New creates an Extractor.
func New(logger *slog.Logger) *Extractor {
	return &Extractor{log: logger.With("adapter", "pdftext")}
}

// ExtractFile opens path and extracts its text.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (*domain.ExtractedText, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return e.Extract(ctx, f, info.Size())
}

// ExtractBytes extracts text from an in-memory PDF.
func (e *Extractor) ExtractBytes(ctx context.Context, data []byte) (*domain.ExtractedText, error) {
	return e.Extract(ctx, bytes.NewReader(data), int64(len(data)))
}

// Extract reads every page and concatenates "left\nright\n\n" per page.
// The result is NFKC-normalized so ligatures become plain letters.
func (e *Extractor) Extract(ctx context.Context, r io.ReaderAt, size int64) (*domain.ExtractedText, error) {
	reader, err := openReader(r, size)
	if err != nil {
		return nil, err
	}

	pageCount := reader.NumPage()
	if pageCount == 0 {
		return nil, fmt.Errorf("%w: document has no pages", ErrExtraction)
	}

	var b strings.Builder
	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		left, right, err := splitPage(page)
		if err != nil {
			e.log.WarnContext(ctx, "skip unreadable page", slog.Int("page", i), slog.String("error", err.Error()))
			continue
		}

		b.WriteString(strings.TrimSpace(left))
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(right))
		b.WriteString("\n\n")
	}

	return &domain.ExtractedText{
		Text:      norm.NFKC.String(b.String()),
		PageCount: pageCount,
	}, nil
}

// openReader wraps pdf.NewReader, which panics on some malformed inputs.
func openReader(r io.ReaderAt, size int64) (reader *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			reader, err = nil, fmt.Errorf("%w: %v", ErrExtraction, p)
		}
	}()

	reader, err = pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return reader, nil
}

// splitPage returns the text of the left and right halves of a page.
func splitPage(page pdf.Page) (left, right string, err error) {
	glyphs, err := pageGlyphs(page)
	if err != nil {
		return "", "", err
	}

	x0, width := mediaBox(page)
	mid := x0 + width/2

	var l, r []pdf.Text
	for _, g := range glyphs {
		if g.X+g.W/2 < mid {
			l = append(l, g)
		} else {
			r = append(r, g)
		}
	}
	return layoutLines(l), layoutLines(r), nil
}

func pageGlyphs(page pdf.Page) (glyphs []pdf.Text, err error) {
	defer func() {
		if p := recover(); p != nil {
			glyphs, err = nil, fmt.Errorf("read content: %v", p)
		}
	}()
	return page.Content().Text, nil
}

// mediaBox returns the left edge and width of the page, following inherited
// attributes up the page tree.
func mediaBox(page pdf.Page) (x0, width float64) {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Kind() != pdf.Array || box.Len() != 4 {
			continue
		}
		llx, urx := box.Index(0).Float64(), box.Index(2).Float64()
		if urx > llx {
			return llx, urx - llx
		}
	}
	return 0, letterWidth
}

// layoutLines groups glyphs into lines top-down and joins each line left to
// right. A space is inserted where the horizontal gap exceeds xTolerance.
func layoutLines(glyphs []pdf.Text) string {
	if len(glyphs) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var lines [][]pdf.Text
	var lineY float64
	for _, g := range sorted {
		if len(lines) == 0 || lineY-g.Y > yTolerance {
			lines = append(lines, nil)
			lineY = g.Y
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], g)
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, joinLine(line))
	}
	return strings.Join(out, "\n")
}

func joinLine(line []pdf.Text) string {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].X < line[j].X
	})

	var b strings.Builder
	for i, g := range line {
		if i > 0 {
			prev := line[i-1]
			gap := g.X - (prev.X + prev.W)
			if gap > xTolerance && !endsWithSpace(prev.S) && !startsWithSpace(g.S) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	return b.String()
}

func endsWithSpace(s string) bool {
	return s != "" && strings.TrimRight(s, " \t") != s
}

func startsWithSpace(s string) bool {
	return s != "" && strings.TrimLeft(s, " \t") != s
}
