package catalogrepo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/catalog"
)

// FileSource serves catalog entries loaded from a YAML file at startup.
type FileSource struct {
	entries []catalog.Entry
}

type catalogFile struct {
	Entries []catalog.Entry `yaml:"entries"`
}

// NewFileSource reads and parses the catalog file once.
func NewFileSource(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var parsed catalogFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(parsed.Entries) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no entries", path)
	}
	return &FileSource{entries: parsed.Entries}, nil
}

// List implements catalog.Source.
func (s *FileSource) List() []catalog.Entry {
	out := make([]catalog.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
