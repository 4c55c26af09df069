package ingest

import (
	"context"
	"os"

	"hedge-analyzer/internal/models"
)

// Source supplies raw rows for one instrument. File uploads and
// market-data fetchers both sit behind this interface; the analysis
// pipeline does not care which it is talking to.
type Source interface {
	Symbol() string
	Rows(ctx context.Context) ([]models.RawRow, error)
}

// FileSource reads rows from a CSV file on disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a Source backed by the given CSV file.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Symbol() string {
	return SymbolFromFilename(s.Path)
}

func (s *FileSource) Rows(ctx context.Context) ([]models.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRows(f)
}
