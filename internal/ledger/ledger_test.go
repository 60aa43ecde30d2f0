package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := New(filepath.Join(t.TempDir(), "sent_log.csv"))
	l.now = func() time.Time {
		return time.Date(2026, 8, 28, 10, 30, 0, 0, time.Local)
	}
	return l
}

func TestLoadMissingFileCreatesEmptyLedger(t *testing.T) {
	l := newTestLedger(t)

	processed, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 0 {
		t.Fatalf("expected empty set, got %v", processed)
	}

	content, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("ledger file should have been created: %v", err)
	}
	if strings.TrimSpace(string(content)) != "Id,Timestamp,Status" {
		t.Fatalf("unexpected ledger schema: %q", content)
	}
}

func TestProcessedAndEntriesAreReadOnly(t *testing.T) {
	l := newTestLedger(t)

	processed, err := l.Processed()
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 0 {
		t.Fatalf("expected empty set, got %v", processed)
	}
	entries, err := l.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
	if _, err := os.Stat(l.Path()); !os.IsNotExist(err) {
		t.Fatal("read-only inspection created the ledger file")
	}
}

func TestAppendAndLoad(t *testing.T) {
	l := newTestLedger(t)

	if err := l.Append("101", StatusSuccess); err != nil {
		t.Fatal(err)
	}
	if err := l.Append("102", FailureStatus(errors.New("smtp: connection refused"))); err != nil {
		t.Fatal(err)
	}

	processed, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(processed) != 2 {
		t.Fatalf("processed = %v", processed)
	}
	// Failed attempts count as processed too; the next run must not retry.
	if _, ok := processed["102"]; !ok {
		t.Fatal("failed entry missing from processed set")
	}
}

func TestEntriesPreserveOrderAndStatus(t *testing.T) {
	l := newTestLedger(t)

	for _, id := range []string{"1", "2", "3"} {
		status := StatusSuccess
		if id == "2" {
			status = FailureStatus(errors.New("boom"))
		}
		if err := l.Append(id, status); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := l.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d", len(entries))
	}
	if entries[0].ID != "1" || entries[2].ID != "3" {
		t.Fatalf("order not preserved: %+v", entries)
	}
	if !entries[1].Status.Failed() {
		t.Fatalf("entry 2 status = %q", entries[1].Status)
	}
	if entries[1].Status != "Failed: boom" {
		t.Fatalf("failure reason lost: %q", entries[1].Status)
	}
	if entries[0].Timestamp.IsZero() {
		t.Fatal("timestamp not recorded")
	}
}

func TestLoadRejectsForeignSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sent_log.csv")
	if err := os.WriteFile(path, []byte("Email,Date\nx,y\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(path).Load(); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestAppendLeavesNoTempFiles(t *testing.T) {
	l := newTestLedger(t)
	if err := l.Append("1", StatusSuccess); err != nil {
		t.Fatal(err)
	}
	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(l.Path()), ".sentlog-*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v", leftovers)
	}
}

func TestLoadTrimsIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sent_log.csv")
	body := "Id,Timestamp,Status\n 7 ,2026-08-01 09:00:00,Success\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	processed, err := New(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := processed["7"]; !ok {
		t.Fatalf("expected trimmed id, got %v", processed)
	}
}
