package document

import (
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/aiyyappann/EchoVision/internal/braille"
	"github.com/aiyyappann/EchoVision/internal/domain"
)

// MaxTranscodeBytes bounds the text accepted by Transcode.
const MaxTranscodeBytes = 1 << 20

// UploadInput holds an uploaded file.
type UploadInput struct {
	Filename string
	// Size is the declared size in bytes, or -1 when unknown.
	Size int64
	Body io.Reader
}

// Validate checks the name, extension and declared size.
func (i UploadInput) Validate(maxBytes int64) error {
	name := strings.TrimSpace(i.Filename)
	if name == "" {
		return domain.NewValidationError("pdf_file", "required")
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return domain.ErrInvalidFileType
	}
	if maxBytes > 0 && i.Size > maxBytes {
		return domain.ErrFileTooLarge
	}
	if i.Body == nil {
		return domain.NewValidationError("pdf_file", "empty body")
	}
	return nil
}

// TranscodeInput holds a direct transcription request.
type TranscodeInput struct {
	Text           string
	Scheme         string
	PreserveLayout bool
}

// Validate checks all fields and collects all errors.
func (i TranscodeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(i.Text) > MaxTranscodeBytes {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 1 MiB"})
	}
	if _, err := braille.ParseScheme(i.Scheme); err != nil {
		errs = append(errs, domain.FieldError{Field: "scheme", Message: "must be compat or ueb"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SecureFilename reduces a client supplied name to a flat file name made of
// ASCII letters, digits, '.', '_' and '-'. Whitespace runs become '_'.
// Accents are decomposed first so "é" keeps its base letter.
func SecureFilename(name string) string {
	name = norm.NFKD.String(name)
	name = strings.NewReplacer("/", " ", `\`, " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "._")
}
