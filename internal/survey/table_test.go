package survey

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = "ID,Full Name,Work Email\n1,Ana Pop,ana@example.com\n2,Dan Ionescu,dan@example.com\n"

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	table, err := Load(writeTable(t, sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Headers) != 3 || table.Headers[1] != "Full Name" {
		t.Fatalf("headers = %v", table.Headers)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d", len(table.Rows))
	}
	if table.Rows[1]["Work Email"] != "dan@example.com" {
		t.Fatalf("row value = %q", table.Rows[1]["Work Email"])
	}
}

func TestLoadStripsBOM(t *testing.T) {
	table, err := Load(writeTable(t, "\uFEFFID,Name\n1,Ana\n"))
	if err != nil {
		t.Fatal(err)
	}
	if table.Headers[0] != "ID" {
		t.Fatalf("BOM not stripped: %q", table.Headers[0])
	}
}

func TestLoadShortRecordPadsEmpty(t *testing.T) {
	table, err := Load(writeTable(t, "ID,Name,Email\n1,Ana\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := table.Rows[0]["Email"]; got != "" {
		t.Fatalf("expected empty fill, got %q", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	table, err := Load(writeTable(t, sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	clone := table.Clone()
	clone.Rows[0]["Full Name"] = "changed"
	if table.Rows[0]["Full Name"] == "changed" {
		t.Fatal("clone shares row storage with original")
	}
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	path := writeTable(t, sampleCSV)
	table, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	table.Rows[0]["Work Email"] = "new@example.com"
	if err := table.SaveAtomic(path); err != nil {
		t.Fatal(err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Rows[0]["Work Email"] != "new@example.com" {
		t.Fatalf("mutation not persisted: %v", reloaded.Rows[0])
	}

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".outreach-*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v", leftovers)
	}
}

func TestSaveAtomicFailureLeavesOriginal(t *testing.T) {
	path := writeTable(t, sampleCSV)
	table, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Target a path whose directory does not exist so the temp file cannot
	// be created.
	badPath := filepath.Join(filepath.Dir(path), "missing", "survey.csv")
	if err := table.SaveAtomic(badPath); err == nil {
		t.Fatal("expected save failure")
	}

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(original) != sampleCSV {
		t.Fatal("original table modified by failed save")
	}
	if _, err := os.Stat(badPath); !os.IsNotExist(err) {
		t.Fatalf("partial file present at target: %v", err)
	}
}

func TestLoadMissingHeader(t *testing.T) {
	_, err := Load(writeTable(t, ""))
	if err == nil || !strings.Contains(err.Error(), "header") {
		t.Fatalf("expected header error, got %v", err)
	}
}
