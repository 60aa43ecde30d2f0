package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Status records the outcome of one processing attempt.
type Status string

// StatusSuccess marks a recipient whose message was generated and sent.
const StatusSuccess Status = "Success"

// FailureStatus builds the status recorded for a failed attempt.
func FailureStatus(reason error) Status {
	if reason == nil {
		return Status("Failed")
	}
	return Status("Failed: " + reason.Error())
}

// Failed reports whether the status records a failed attempt.
func (s Status) Failed() bool {
	return strings.HasPrefix(string(s), "Failed")
}

// Entry is one recorded processing outcome.
type Entry struct {
	ID        string
	Timestamp time.Time
	Status    Status
}

var header = []string{"Id", "Timestamp", "Status"}

const timestampLayout = "2006-01-02 15:04:05"

// Ledger reads and appends the sent-log file.
type Ledger struct {
	path string
	now  func() time.Time
}

// New returns a ledger bound to path.
func New(path string) *Ledger {
	return &Ledger{path: path, now: time.Now}
}

// Path returns the ledger file location.
func (l *Ledger) Path() string { return l.path }

// Load returns the set of already-processed recipient ids. A missing ledger
// file is created with the schema header and yields the empty set; runs rely
// on the file existing before the first append.
func (l *Ledger) Load() (map[string]struct{}, error) {
	if _, err := os.Stat(l.path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat ledger: %w", err)
		}
		if err := l.writeAll(nil); err != nil {
			return nil, fmt.Errorf("create ledger: %w", err)
		}
	}
	return l.Processed()
}

// Processed returns the processed-id set without creating a missing file.
// Read-only callers such as preview use it so inspecting a campaign leaves
// no trace on disk.
func (l *Ledger) Processed() (map[string]struct{}, error) {
	entries, err := l.Entries()
	if err != nil {
		return nil, err
	}
	processed := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			continue
		}
		processed[id] = struct{}{}
	}
	return processed, nil
}

// Entries reads every recorded entry in file order. A missing file yields no
// entries and is left absent.
func (l *Ledger) Entries() ([]Entry, error) {
	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse ledger: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !headerMatches(records[0]) {
		return nil, fmt.Errorf("ledger %s has unexpected columns %v, want %v", l.path, records[0], header)
	}

	entries := make([]Entry, 0, len(records)-1)
	for _, record := range records[1:] {
		entry := Entry{}
		if len(record) > 0 {
			entry.ID = record[0]
		}
		if len(record) > 1 {
			if ts, err := time.ParseInLocation(timestampLayout, record[1], time.Local); err == nil {
				entry.Timestamp = ts
			}
		}
		if len(record) > 2 {
			entry.Status = Status(record[2])
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Append records one outcome. The full ledger is read, extended by one row,
// and written back; not safe under concurrent writers.
func (l *Ledger) Append(id string, status Status) error {
	entries, err := l.Entries()
	if err != nil {
		return err
	}
	entries = append(entries, Entry{
		ID:        strings.TrimSpace(id),
		Timestamp: l.now(),
		Status:    status,
	})
	if err := l.writeAll(entries); err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

func (l *Ledger) writeAll(entries []Entry) (err error) {
	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, ".sentlog-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	writer := csv.NewWriter(tmp)
	if err = writer.Write(header); err != nil {
		_ = tmp.Close()
		return err
	}
	for _, entry := range entries {
		record := []string{entry.ID, entry.Timestamp.Format(timestampLayout), string(entry.Status)}
		if err = writer.Write(record); err != nil {
			_ = tmp.Close()
			return err
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, l.path)
}

func headerMatches(record []string) bool {
	if len(record) != len(header) {
		return false
	}
	for i, want := range header {
		got := strings.TrimSpace(strings.TrimPrefix(record[i], "\uFEFF"))
		if !strings.EqualFold(got, want) {
			return false
		}
	}
	return true
}
