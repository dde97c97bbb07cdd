package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod in %s: %v", root, err)
	}
}

func TestAssertGoldenMatches(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(RepoRoot(t), "testdata", "fonts_grouped.golden"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	AssertGolden(t, "fonts_grouped.golden", string(data))
}
