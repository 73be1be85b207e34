package rawtext

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// A Sink appends rendered report text to an output, one blob per record,
// without modification. Sinks do not serialize callers; hosts invoking a
// module concurrently must serialize writes themselves.
type Sink interface {
	WriteReport(ctx context.Context, text string) error
}

// WriterSink appends reports to an io.Writer, which includes os.Stdout and
// os.Stderr.
type WriterSink struct {
	Writer io.Writer
}

var _ Sink = (*WriterSink)(nil)

func (s *WriterSink) WriteReport(_ context.Context, text string) error {
	const op = "rawtext.(WriterSink).WriteReport"
	if s.Writer == nil {
		return fmt.Errorf("%s: missing writer", op)
	}
	if _, err := io.WriteString(s.Writer, text); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FileSink appends reports to a file. The file is opened lazily on first
// write and can be rotated with Reopen.
type FileSink struct {
	Path string
	Mode os.FileMode

	f *os.File
	l sync.Mutex
}

var _ Sink = (*FileSink)(nil)

const defaultFileMode = os.FileMode(0o600)

func (s *FileSink) open() error {
	mode := s.Mode
	if mode == 0 {
		mode = defaultFileMode
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}

	var err error
	s.f, err = os.OpenFile(s.Path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, mode)
	if err != nil {
		return err
	}

	// Change the file mode in case the file already existed. We special
	// case /dev/null since we can't chmod it.
	if s.Path != "/dev/null" && s.Mode != 0 {
		if err := os.Chmod(s.Path, s.Mode); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileSink) WriteReport(_ context.Context, text string) error {
	const op = "rawtext.(FileSink).WriteReport"
	if s.Path == "" {
		return fmt.Errorf("%s: missing path", op)
	}

	s.l.Lock()
	defer s.l.Unlock()

	if s.f == nil {
		if err := s.open(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if _, err := io.WriteString(s.f, text); err == nil {
		return nil
	}

	// The write failed; opportunistically try to re-open the file once per
	// call and retry.
	_ = s.f.Close()
	s.f = nil

	if err := s.open(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := io.WriteString(s.f, text); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Reopen closes and reopens the underlying file, for rotation by a host
// framework.
func (s *FileSink) Reopen() error {
	const op = "rawtext.(FileSink).Reopen"

	s.l.Lock()
	defer s.l.Unlock()

	if s.f == nil {
		if err := s.open(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	err := s.f.Close()
	// Set to nil here so that even if we error out, on the next write
	// open() will be tried.
	s.f = nil
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.open(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *FileSink) Name() string {
	return fmt.Sprintf("sink:%s", s.Path)
}
