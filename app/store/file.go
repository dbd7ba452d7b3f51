package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/tfrwatch/tfrwatch/app/advisory"
)

var _ Store = (*FileStore)(nil)

// FileStore keeps each collection as one JSON array file, the format
// the original cache files used.
type FileStore struct {
	snapshotPath string
	historyPath  string
}

func NewFileStore(snapshotPath, historyPath string) *FileStore {
	return &FileStore{
		snapshotPath: snapshotPath,
		historyPath:  historyPath,
	}
}

func (s *FileStore) LoadSnapshot() []advisory.Raw {
	var items []advisory.Raw
	if !readJSONFile(s.snapshotPath, &items) {
		return nil
	}
	return items
}

func (s *FileStore) SaveSnapshot(items []advisory.Raw) error {
	return writeJSONFile(s.snapshotPath, items)
}

func (s *FileStore) LoadHistory() []advisory.Parsed {
	var items []advisory.Parsed
	if !readJSONFile(s.historyPath, &items) {
		return nil
	}
	return items
}

func (s *FileStore) SaveHistory(items []advisory.Parsed) error {
	return writeJSONFile(s.historyPath, items)
}

func (s *FileStore) Close() error {
	return nil
}

// readJSONFile decodes path into out and reports whether out holds a
// usable result. A missing file is a normal first run; an unreadable
// or undecodable file is logged and degraded to an empty collection so
// the cycle can proceed.
func readJSONFile(path string, out any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("Failed to read cache file", "path", path, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		slog.Error("Failed to decode cache file, treating as empty", "path", path, "error", err)
		return false
	}

	return true
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file %s: %w", path, err)
	}

	return nil
}
