package keystore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/mathsheets/internal/domain"
	"github.com/aalvaropc/mathsheets/internal/ports"
)

const defaultKeysDir = "keys"

type JSONStore struct {
	rootDir    string
	keysDir    string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: keys/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	keysDir := cfg.AnswerKey.Dir
	if strings.TrimSpace(keysDir) == "" {
		keysDir = defaultKeysDir
	}

	s := &JSONStore{
		rootDir:    root,
		keysDir:    keysDir,
		writeIndex: false,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.KeyStore = (*JSONStore)(nil)

func (s *JSONStore) SaveKey(key domain.AnswerKey) (string, error) {
	dir := s.keysDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.rootDir, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "keystore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := key.GeneratedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := key
	toSave.GeneratedAt = ts

	sheetPart := strings.TrimSuffix(filepath.Base(key.SheetPath), filepath.Ext(key.SheetPath))
	if strings.TrimSpace(sheetPart) == "" || sheetPart == "." {
		sheetPart = string(key.Sheet)
	}
	slug := slugify(sheetPart)
	if slug == "" {
		slug = "sheet"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "keystore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "keystore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "keystore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, key domain.AnswerKey) error {
	type idx struct {
		ID          string           `json:"id"`
		File        string           `json:"file"`
		Sheet       domain.SheetKind `json:"sheet"`
		SheetPath   string           `json:"sheet_path"`
		Problems    int              `json:"problems"`
		GeneratedAt time.Time        `json:"generated_at"`
	}
	line, err := json.Marshal(idx{
		ID:          id,
		File:        filename,
		Sheet:       key.Sheet,
		SheetPath:   key.SheetPath,
		Problems:    len(key.Problems) + len(key.Cubes),
		GeneratedAt: key.GeneratedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
