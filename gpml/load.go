package gpml

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/gpmldiff/model"
)

// Store loads and saves pathways by afs URL (local path, file://, mem://, ...)
type Store struct {
	fs afs.Service
}

// Load loads a pathway
func (s *Store) Load(ctx context.Context, URL string) (*model.Pathway, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v: %w", URL, err)
	}
	pathway, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", URL, err)
	}
	return pathway, nil
}

// Save writes a pathway, URL with .gz extension gets compressed
func (s *Store) Save(ctx context.Context, URL string, pathway *model.Pathway) error {
	data, err := Marshal(pathway)
	if err != nil {
		return err
	}
	if strings.HasSuffix(URL, ".gz") {
		buffer := &bytes.Buffer{}
		writer := pgzip.NewWriter(buffer)
		if _, err = writer.Write(data); err != nil {
			return err
		}
		if err = writer.Close(); err != nil {
			return err
		}
		data = buffer.Bytes()
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save %v: %w", URL, err)
	}
	return nil
}

// NewStore creates a store
func NewStore(fs afs.Service) *Store {
	if fs == nil {
		fs = afs.New()
	}
	return &Store{fs: fs}
}
