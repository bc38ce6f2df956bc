package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"InsiderPull/internal/domain/models"

	"github.com/tidwall/pretty"
)

// ErrReportNotFound is returned by Latest before the first run wrote a report.
var ErrReportNotFound = errors.New("report not found")

var prettyOptions = &pretty.Options{Width: 80, Indent: "  "}

// ReportFile is the primary snapshot sink: the report JSON on disk. It also
// serves the last written report back, re-reading only when the file changes.
type ReportFile struct {
	path string

	mu      sync.Mutex
	modTime time.Time
	size    int64
	cached  *models.Report
}

func NewReportFile(path string) *ReportFile {
	return &ReportFile{path: path}
}

func (f *ReportFile) Name() string { return "file" }

func (f *ReportFile) Path() string { return f.path }

// Save writes the report atomically through a temp file in the same directory.
func (f *ReportFile) Save(ctx context.Context, s *models.Snapshot) error {
	if s == nil || s.Report == nil {
		return fmt.Errorf("empty snapshot")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := EncodeReport(s.Report)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".insider-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod report: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}

// Latest returns the report currently on disk.
func (f *ReportFile) Latest(ctx context.Context) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := os.Stat(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("stat report: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cached != nil && info.ModTime().Equal(f.modTime) && info.Size() == f.size {
		return f.cached, nil
	}

	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r models.Report
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	f.cached, f.modTime, f.size = &r, info.ModTime(), info.Size()
	return &r, nil
}

// EncodeReport renders the report the way it is published: two-space indent,
// non-ASCII text left as is.
func EncodeReport(r *models.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return pretty.PrettyOptions(buf.Bytes(), prettyOptions), nil
}
