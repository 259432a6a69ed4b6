package scanner

import (
	"bufio"
	"io"

	"github.com/tyama/commentx/internal/model"
)

// lineScanner is a per-style state machine. scanLine consumes one raw
// line (without its terminator) and appends every comment completed on
// that line to out; flush appends whatever is still open at EOF.
type lineScanner interface {
	scanLine(line string, num int, out []model.Comment) []model.Comment
	flush(out []model.Comment) []model.Comment
}

// Stream is a forward-only, single-pass sequence of comments read
// lazily from one source. Usage follows the bufio.Scanner idiom:
//
//	st, err := scanner.ScanFile(path, scanner.Options{})
//	if err != nil { ... }
//	defer st.Close()
//	for st.Next() {
//		c := st.Comment()
//		...
//	}
//	if err := st.Err(); err != nil { ... }
//
// The underlying file is released when the stream is exhausted, when an
// error occurs, or on Close, whichever comes first. Close is idempotent.
type Stream struct {
	src     io.Closer
	lines   *bufio.Scanner
	ls      lineScanner
	pending []model.Comment
	cur     model.Comment
	lineNum int
	err     error
	done    bool
}

func newStream(r io.Reader, c io.Closer, ls lineScanner) *Stream {
	lines := bufio.NewScanner(r)
	// allow very long lines
	lines.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Stream{src: c, lines: lines, ls: ls}
}

func emptyStream() *Stream {
	return &Stream{done: true}
}

// Next advances to the next comment. It returns false when the source
// is exhausted or a read error occurred; check Err afterwards.
func (s *Stream) Next() bool {
	for {
		if len(s.pending) > 0 {
			s.cur = s.pending[0]
			s.pending = s.pending[1:]
			return true
		}
		if s.done {
			return false
		}
		if s.lines.Scan() {
			s.lineNum++
			s.pending = s.ls.scanLine(s.lines.Text(), s.lineNum, nil)
			continue
		}
		if err := s.lines.Err(); err != nil {
			s.err = err
		} else {
			s.pending = s.ls.flush(nil)
		}
		s.done = true
		s.closeSrc()
	}
}

// Comment returns the record produced by the last successful Next.
func (s *Stream) Comment() model.Comment {
	return s.cur
}

// Err returns the first error encountered while reading.
func (s *Stream) Err() error {
	return s.err
}

// Close releases the underlying file. Safe to call at any point and
// more than once; comments not yet consumed are discarded.
func (s *Stream) Close() error {
	s.done = true
	s.pending = nil
	return s.closeSrc()
}

func (s *Stream) closeSrc() error {
	if s.src == nil {
		return nil
	}
	src := s.src
	s.src = nil
	err := src.Close()
	if err != nil && s.err == nil {
		s.err = err
	}
	return err
}

// Collect drains the stream into a slice and closes it.
func (s *Stream) Collect() ([]model.Comment, error) {
	defer s.Close()
	var out []model.Comment
	for s.Next() {
		out = append(out, s.Comment())
	}
	return out, s.Err()
}
