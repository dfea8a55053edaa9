package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunGenDoc_Markdown(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := runGenDoc(&buf, rootCmd, dir, false); err != nil {
		t.Fatalf("runGenDoc() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "slotcheck_check.md"))
	if err != nil {
		t.Fatalf("expected check page: %v", err)
	}
	if !strings.HasPrefix(string(data), "---\ntitle: \"slotcheck check\"") {
		t.Errorf("missing front matter:\n%s", data[:min(len(data), 120)])
	}
}

func TestRunGenDoc_Man(t *testing.T) {
	dir := t.TempDir()
	if err := runGenDoc(&bytes.Buffer{}, rootCmd, dir, true); err != nil {
		t.Fatalf("runGenDoc() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "slotcheck-sets-export.1")); err != nil {
		t.Errorf("expected man page: %v", err)
	}
}

func TestRunGenDoc_RequiresDir(t *testing.T) {
	if err := runGenDoc(&bytes.Buffer{}, rootCmd, "", false); err == nil {
		t.Fatal("expected error without --dir")
	}
}

func TestLinkHandler(t *testing.T) {
	if got := linkHandler("slotcheck_sets_list.md"); got != "/docs/reference/slotcheck_sets_list/" {
		t.Errorf("linkHandler() = %q", got)
	}
}
