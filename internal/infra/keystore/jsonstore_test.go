package keystore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/mathsheets/internal/domain"
)

func TestSaveKey_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.AnswerKey.Dir = "keys"

	store := NewJSONStore(tmp, cfg)

	at := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	key := domain.AnswerKey{
		Sheet:       domain.SheetNegative,
		SheetPath:   "out/neg-add-sheet.html",
		GeneratedAt: at,
		Problems: []domain.Problem{
			{A: -5, B: 3, Op: domain.Add, Answer: -2},
			{A: 2, B: 7, Op: domain.Subtract, Answer: -5},
		},
	}

	id, err := store.SaveKey(key)
	if err != nil {
		t.Fatalf("SaveKey error: %v", err)
	}
	if id != "20260203T101112Z_neg-add-sheet" {
		t.Fatalf("unexpected id %q", id)
	}

	wantFile := filepath.Join(tmp, "keys", id+".json")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.AnswerKey
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Sheet != domain.SheetNegative {
		t.Fatalf("expected sheet kind, got=%q", decoded.Sheet)
	}
	if len(decoded.Problems) != 2 || decoded.Problems[1] != key.Problems[1] {
		t.Fatalf("expected problems in order, got=%+v", decoded.Problems)
	}
	if _, err := os.Stat(wantFile + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file removed, stat err=%v", err)
	}
}

func TestSaveKey_UsesNowAndSheetKindFallback(t *testing.T) {
	tmp := t.TempDir()
	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	store := NewJSONStore(tmp, domain.DefaultConfig(), WithNow(func() time.Time { return at }))

	id, err := store.SaveKey(domain.AnswerKey{
		Sheet: domain.SheetCube,
		Cubes: []domain.CubeAnswer{{Given: "side", Side: 2, Face: 4, TotalArea: 24, Volume: 8}},
	})
	if err != nil {
		t.Fatalf("SaveKey error: %v", err)
	}
	if id != "20261019T080000Z_cube" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestSaveKey_AppendsIndex(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	store := NewJSONStore(tmp, cfg, WithIndex(true), WithNow(func() time.Time { return at }))

	for _, name := range []string{"neg-add-sheet.html", "cube-sheet.html"} {
		if _, err := store.SaveKey(domain.AnswerKey{Sheet: domain.SheetNegative, SheetPath: name}); err != nil {
			t.Fatalf("SaveKey error: %v", err)
		}
	}

	f, err := os.Open(filepath.Join(tmp, "keys", "index.jsonl"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	var ids []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var line struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			t.Fatalf("unmarshal index line: %v", err)
		}
		ids = append(ids, line.ID)
	}
	if len(ids) != 2 || ids[0] != "20260101T000000Z_neg-add-sheet" || ids[1] != "20260101T000000Z_cube-sheet" {
		t.Fatalf("unexpected index ids %v", ids)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Neg Add Sheet":  "neg-add-sheet",
		"  cube__sheet ": "cube-sheet",
		"***":            "",
		"":               "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
