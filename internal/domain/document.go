package domain

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded PDF registered for later Braille export.
type Document struct {
	ID           uuid.UUID
	Filename     string
	StoredPath   string
	SizeBytes    int64
	PageCount    int
	SummaryModel string
	AudioFile    string
	CreatedAt    time.Time
}

// BaseName returns the filename without its extension.
func (d Document) BaseName() string {
	return BaseName(d.Filename)
}

// ProcessedDocument is the result of an upload: the registered document plus
// everything the result page shows.
type ProcessedDocument struct {
	Document       Document
	Text           string
	Summary        string
	SummaryBraille string
	AudioURL       string
}

// ExtractedText is the plain text of a PDF.
type ExtractedText struct {
	Text      string
	PageCount int
}

// BrailleFile is a rendered Braille document ready for download.
type BrailleFile struct {
	Filename string
	Content  []byte
}

// BrailleFilename returns the download name for a source filename.
func BrailleFilename(source string) string {
	return BaseName(source) + "_braille.pdf"
}

// AudioFilename returns the mp3 name for a source filename.
func AudioFilename(source string) string {
	return BaseName(source) + ".mp3"
}

// BaseName strips the directory and the last extension.
func BaseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
