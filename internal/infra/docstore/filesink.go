package docstore

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/oklog/ulid/v2"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/infra/logger"
	"github.com/mkazemie/github-profile-generator/internal/ports"
)

// StdoutPath selects the sink's writer instead of a file.
const StdoutPath = "-"

const (
	historyFile = "history.jsonl"
	historyLock = "history.lock"
)

// FileSink writes generated documents to a single output path.
type FileSink struct {
	path       string
	stdout     io.Writer
	historyDir string
	now        func() time.Time
	log        *slog.Logger
}

type Option func(*FileSink)

// WithStdout sets the writer used when the path is "-".
func WithStdout(w io.Writer) Option {
	return func(s *FileSink) { s.stdout = w }
}

// WithHistory appends one JSON line per written file to dir/history.jsonl.
func WithHistory(dir string) Option {
	return func(s *FileSink) { s.historyDir = dir }
}

// WithLogger sets where history failures are reported (default logger.L()).
func WithLogger(l *slog.Logger) Option {
	return func(s *FileSink) {
		if l != nil {
			s.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *FileSink) { s.now = now }
}

func NewFileSink(path string, opts ...Option) *FileSink {
	s := &FileSink{
		path:   strings.TrimSpace(path),
		stdout: os.Stdout,
		now:    time.Now,
		log:    logger.L(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.DocumentSink = (*FileSink)(nil)

func (s *FileSink) WriteDocument(doc domain.Document) (string, error) {
	if s.path == "" || s.path == StdoutPath {
		if _, err := io.WriteString(s.stdout, doc.Content); err != nil {
			return "", &domain.OpError{
				Op:   "docstore.stdout",
				Kind: domain.KindExecution,
				Err:  err,
			}
		}
		return StdoutPath, nil
	}

	path := filepath.Clean(s.path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", &domain.OpError{
				Op:   "docstore.mkdir",
				Kind: domain.KindExecution,
				Path: dir,
				Err:  err,
			}
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(doc.Content), 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "docstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "docstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// History is best effort; the document is already written.
	if s.historyDir != "" {
		if err := s.appendHistory(path, doc); err != nil {
			s.log.Warn("history.append.failed", "dir", s.historyDir, "file", path, "err", err)
		}
	}

	return path, nil
}

// HistoryEntry is one line of history.jsonl. ID is a ULID, so entries sort
// by generation time.
type HistoryEntry struct {
	ID          string        `json:"id"`
	File        string        `json:"file"`
	Theme       string        `json:"theme"`
	Handle      string        `json:"handle,omitempty"`
	Format      domain.Format `json:"format"`
	Bytes       int           `json:"bytes"`
	GeneratedAt time.Time     `json:"generated_at"`
}

func (s *FileSink) appendHistory(path string, doc domain.Document) error {
	if err := os.MkdirAll(s.historyDir, 0o755); err != nil {
		return err
	}

	// Concurrent generations in one workspace must not interleave lines.
	lock := flock.New(filepath.Join(s.historyDir, historyLock))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	now := s.now().UTC()
	line, err := json.Marshal(HistoryEntry{
		ID:          ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		File:        path,
		Theme:       doc.Theme,
		Handle:      doc.Handle,
		Format:      doc.Format,
		Bytes:       len(doc.Content),
		GeneratedAt: now,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.historyDir, historyFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadHistory returns the entries recorded in dir, oldest first.
// A missing history file yields no entries.
func ReadHistory(dir string) ([]HistoryEntry, error) {
	path := filepath.Join(dir, historyFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []HistoryEntry{}, nil
		}
		return nil, &domain.OpError{
			Op:   "docstore.history",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	out := []HistoryEntry{}
	for _, raw := range strings.Split(string(b), "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		var e HistoryEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			// Skip lines from interrupted writes.
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
