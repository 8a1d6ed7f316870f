package sitetest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// SnapshotJSON encodes flattened ops as indented JSON. Output is
// deterministic for a given op slice, so encoded snapshots diff cleanly.
func SnapshotJSON(ops []Op) ([]byte, error) {
	return json.MarshalIndent(ops, "", "  ")
}

// MatchSnapshot compares ops against the golden file
// testdata/<name>.json in the calling package. A missing golden file is
// written and the test passes; delete the file to regenerate it.
func MatchSnapshot(t *testing.T, name string, ops []Op) {
	t.Helper()

	data, err := SnapshotJSON(ops)
	if err != nil {
		t.Fatalf("encode snapshot %s: %v", name, err)
	}

	path := filepath.Join("testdata", name+".json")
	golden, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("write snapshot %s: %v", path, err)
		}
		t.Logf("wrote new snapshot %s", path)
		return
	}
	if err != nil {
		t.Fatalf("read snapshot %s: %v", path, err)
	}

	if diff := cmp.Diff(string(golden), string(data)); diff != "" {
		t.Errorf("snapshot %s differs (-golden +got):\n%s", name, diff)
	}
}
