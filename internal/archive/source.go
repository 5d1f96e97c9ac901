package archive

import (
	"bytes"
	"fmt"
	"io"
)

// Source is a replayable byte source. A source starts as a plain forward
// reader; the first Mark call starts buffering so any number of Reset calls
// can return to the mark. Buffering only happens when a second consumer
// actually needs to re-read the bytes.
//
// Contract: Mark may be called once, before any Reset. Reset returns the
// read position to the mark.
type Source struct {
	r      io.Reader
	buf    []byte
	marked bool
	// replay is the portion of buf not yet re-read after a Reset.
	replay []byte
}

// NewSource wraps a reader in a Source.
func NewSource(r io.Reader) *Source {
	return &Source{r: r}
}

// NewBytesSource creates a pre-marked Source over in-memory bytes.
func NewBytesSource(data []byte) *Source {
	return &Source{r: bytes.NewReader(data), marked: true}
}

// Mark starts buffering at the current position. Calling Mark twice is an
// error.
func (s *Source) Mark() error {
	if s.marked {
		return fmt.Errorf("source already marked")
	}
	s.marked = true
	return nil
}

// Reset returns the read position to the mark.
func (s *Source) Reset() error {
	if !s.marked {
		return fmt.Errorf("source not marked")
	}
	s.replay = s.buf
	return nil
}

// Read reads from the replay buffer first, then from the underlying
// reader, buffering when marked.
func (s *Source) Read(p []byte) (int, error) {
	if len(s.replay) > 0 {
		n := copy(p, s.replay)
		s.replay = s.replay[n:]
		return n, nil
	}

	n, err := s.r.Read(p)
	if n > 0 && s.marked {
		s.buf = append(s.buf, p[:n]...)
	}
	return n, err
}

// Bytes materializes and returns all bytes from the mark (or from the
// current position for unmarked sources) to the end of the source.
func (s *Source) Bytes() ([]byte, error) {
	rest, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	if !s.marked {
		return rest, nil
	}
	// buf already holds everything read since the mark, including rest.
	return s.buf, nil
}
