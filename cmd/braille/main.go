// Command braille transcodes text to Unicode Braille without the server.
//
// Input is plain text (-in, default stdin) or a PDF (-pdf). Output is plain
// Braille text (-out, default stdout), or a Braille PDF when -out ends in
// ".pdf".
//
// Examples:
//
//	echo "Hello 2024" | braille
//	braille -pdf report.pdf -out report_braille.pdf -scheme ueb -layout
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aiyyappann/EchoVision/internal/adapter/pdftext"
	"github.com/aiyyappann/EchoVision/internal/adapter/render/braillepdf"
	"github.com/aiyyappann/EchoVision/internal/braille"
)

type options struct {
	in       string
	pdf      string
	out      string
	scheme   string
	layout   bool
	fontPath string
}

func main() {
	var opts options
	flag.StringVar(&opts.in, "in", "", "plain text input file (default stdin)")
	flag.StringVar(&opts.pdf, "pdf", "", "PDF input file; overrides -in")
	flag.StringVar(&opts.out, "out", "", "output file; a .pdf suffix renders a Braille PDF (default stdout)")
	flag.StringVar(&opts.scheme, "scheme", "compat", "braille scheme: compat or ueb")
	flag.BoolVar(&opts.layout, "layout", false, "keep line breaks and spacing of the input")
	flag.StringVar(&opts.fontPath, "font", "", "TTF font for PDF output (default embedded DejaVu Sans Condensed)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), opts, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("braille failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	scheme, err := braille.ParseScheme(opts.scheme)
	if err != nil {
		return err
	}

	text, err := readInput(ctx, opts, stdin, logger)
	if err != nil {
		return err
	}

	t := braille.New(braille.WithScheme(scheme))
	var out string
	if opts.layout {
		out = t.TranscodeLayout(text)
	} else {
		out = t.Transcode(text)
	}

	if strings.EqualFold(filepath.Ext(opts.out), ".pdf") {
		r, err := braillepdf.New(braillepdf.Config{
			FontPath:   opts.fontPath,
			FontSize:   12,
			LineHeight: 10,
			Margin:     10,
			Title:      "EchoVision Braille",
		}, logger)
		if err != nil {
			return err
		}
		doc, err := r.Render(ctx, out)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.out, doc, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.out, err)
		}
		logger.Info("braille pdf written", slog.String("path", opts.out), slog.Int("bytes", len(doc)))
		return nil
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.out, err)
		}
		return nil
	}
	_, err = io.WriteString(stdout, out)
	return err
}

func readInput(ctx context.Context, opts options, stdin io.Reader, logger *slog.Logger) (string, error) {
	switch {
	case opts.pdf != "":
		res, err := pdftext.New(logger).ExtractFile(ctx, opts.pdf)
		if err != nil {
			return "", err
		}
		logger.Info("pdf extracted", slog.String("path", opts.pdf), slog.Int("pages", res.PageCount))
		return res.Text, nil
	case opts.in != "":
		b, err := os.ReadFile(opts.in)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", opts.in, err)
		}
		return string(b), nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
}
