// Package jsonfile is the default persistence backend: one JSON object per
// collection, written whole on every mutation. The file layout matches the
// legacy mobile app's usuarios.json and registros.json so existing data
// files keep loading.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/exp/slog"
)

const (
	usersFile   = "usuarios.json"
	recordsFile = "registros.json"
)

type Storage struct {
	dir string
	log *slog.Logger

	mu sync.Mutex
	// username -> account document
	users map[string]accountDoc
	// username -> legacy category key -> ordered record documents
	records map[string]map[string][]recordDoc
}

// accountDoc mirrors the legacy usuarios.json entry field-for-field.
type accountDoc struct {
	Name         string `json:"nome"`
	Age          string `json:"idade,omitempty"`
	Sex          string `json:"sexo,omitempty"`
	PasswordHash string `json:"senha"`
	Salt         string `json:"salt"`
	Reason       string `json:"motivo,omitempty"`
	CreatedAt    string `json:"criado_em,omitempty"`
}

// recordDoc is the flat legacy record object: creation "data"/"hora" plus
// the category fields, with an "id" added by this implementation.
type recordDoc map[string]string

func New(dir string, log *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Storage{
		dir:     dir,
		log:     log.With("component", "jsonfile_storage"),
		users:   make(map[string]accountDoc),
		records: make(map[string]map[string][]recordDoc),
	}

	if err := loadJSON(filepath.Join(dir, usersFile), &s.users); err != nil {
		return nil, fmt.Errorf("load %s: %w", usersFile, err)
	}
	if err := loadJSON(filepath.Join(dir, recordsFile), &s.records); err != nil {
		return nil, fmt.Errorf("load %s: %w", recordsFile, err)
	}

	s.log.Debug("storage loaded", "dir", dir, "users", len(s.users), "record_owners", len(s.records))
	return s, nil
}

func (s *Storage) Close() error {
	return nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *Storage) saveUsers() error {
	return s.writeAtomic(usersFile, s.users)
}

func (s *Storage) saveRecords() error {
	return s.writeAtomic(recordsFile, s.records)
}

// writeAtomic marshals v into a temp file in the storage directory and
// renames it over the target, so a failed write never leaves a truncated
// collection behind.
func (s *Storage) writeAtomic(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", name, err)
	}

	return nil
}
