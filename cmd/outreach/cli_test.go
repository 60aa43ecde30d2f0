package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"outreach/internal/ledger"
)

func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	content := fmt.Sprintf(`[paths]
survey_path = %q
ledger_path = %q
log_dir = %q

[smtp]
host = "mail.example.com"
from = "sender@example.com"
`,
		filepath.Join(dir, "survey.csv"),
		filepath.Join(dir, "sent_log.csv"),
		filepath.Join(dir, "logs"),
	)
	path := filepath.Join(dir, "outreach.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("output missing target path:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatal(err)
	}
}

func TestStatusCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)

	book := ledger.New(filepath.Join(dir, "sent_log.csv"))
	if err := book.Append("1", ledger.StatusSuccess); err != nil {
		t.Fatal(err)
	}
	if err := book.Append("2", ledger.FailureStatus(fmt.Errorf("mailbox unavailable"))); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "--config", cfgPath, "status")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Recorded: 2 (1 succeeded, 1 failed)") {
		t.Fatalf("unexpected status output:\n%s", out)
	}
	if !strings.Contains(out, "mailbox unavailable") {
		t.Fatalf("failure reason missing:\n%s", out)
	}
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)

	survey := strings.Join([]string{
		"Id,Name,Email,Career Coach Email,Upskilling Interest,Future Training Programs,Next Period Enrollment,Send Email",
		"1,Ana,ana@example.com,coach@example.com,AI,Leadership,Yes,",
		"2,Bogdan,bogdan@example.com,coach@example.com,Cloud,Architecture,No,",
	}, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, "survey.csv"), []byte(survey), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "--config", cfgPath, "preview")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Ana", "Bogdan", "2 pending of 2 survey rows"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	// Recording one outcome removes that recipient from the preview.
	if err := ledger.New(filepath.Join(dir, "sent_log.csv")).Append("1", ledger.StatusSuccess); err != nil {
		t.Fatal(err)
	}
	out, err = runCommand(t, "--config", cfgPath, "preview")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "Ana") || !strings.Contains(out, "Bogdan") {
		t.Fatalf("processed recipient still previewed:\n%s", out)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"1", "2"}, {"3"}})
	for _, want := range []string{"A", "B", "1", "3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if renderTable(nil, nil) != "" {
		t.Fatal("empty headers must render nothing")
	}
}
