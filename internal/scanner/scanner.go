// Package scanner provides cursor utilities for walking mangled symbol text.
package scanner

import "errors"

// Errors returned by Scanner
var (
	ErrUnexpectedEOF    = errors.New("scanner: unexpected end of input")
	ErrBadNumeral       = errors.New("scanner: malformed decimal numeral")
	ErrTruncatedLiteral = errors.New("scanner: literal exceeds remaining input")
)

// maxNumeral caps decoded decimal values so hostile counts cannot overflow
// downstream arithmetic or provoke huge allocations.
const maxNumeral = 1 << 30

// Scanner walks mangled symbol text left to right. All reads are
// bounds-checked; the position only advances on success.
type Scanner struct {
	data   string
	offset int
}

// New creates a Scanner over the given input.
func New(input string) *Scanner {
	return &Scanner{data: input, offset: 0}
}

// Offset returns the current read position.
func (s *Scanner) Offset() int {
	return s.offset
}

// Remaining returns the number of unread bytes.
func (s *Scanner) Remaining() int {
	if s.offset >= len(s.data) {
		return 0
	}
	return len(s.data) - s.offset
}

// EOF reports whether the input is exhausted.
func (s *Scanner) EOF() bool {
	return s.offset >= len(s.data)
}

// Rest returns the unread portion of the input without advancing.
func (s *Scanner) Rest() string {
	if s.offset >= len(s.data) {
		return ""
	}
	return s.data[s.offset:]
}

// Peek returns the next byte without advancing, or 0 at end of input.
func (s *Scanner) Peek() byte {
	if s.offset >= len(s.data) {
		return 0
	}
	return s.data[s.offset]
}

// PeekAt returns the byte n positions ahead without advancing, or 0 when
// that position is past the end of input.
func (s *Scanner) PeekAt(n int) byte {
	if s.offset+n >= len(s.data) {
		return 0
	}
	return s.data[s.offset+n]
}

// Next consumes and returns the next byte.
func (s *Scanner) Next() (byte, error) {
	if s.offset >= len(s.data) {
		return 0, ErrUnexpectedEOF
	}
	c := s.data[s.offset]
	s.offset++
	return c, nil
}

// NextIf consumes the next byte if it equals c.
func (s *Scanner) NextIf(c byte) bool {
	if s.offset < len(s.data) && s.data[s.offset] == c {
		s.offset++
		return true
	}
	return false
}

// Consume consumes prefix if the unread input starts with it.
func (s *Scanner) Consume(prefix string) bool {
	if s.offset+len(prefix) > len(s.data) {
		return false
	}
	if s.data[s.offset:s.offset+len(prefix)] != prefix {
		return false
	}
	s.offset += len(prefix)
	return true
}

// ReadNatural decodes a decimal numeral of one or more digits. Values above
// an internal cap are rejected as malformed.
func (s *Scanner) ReadNatural() (int, error) {
	start := s.offset
	n := 0
	for s.offset < len(s.data) {
		c := s.data[s.offset]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > maxNumeral {
			s.offset = start
			return 0, ErrBadNumeral
		}
		s.offset++
	}
	if s.offset == start {
		return 0, ErrBadNumeral
	}
	return n, nil
}

// ReadLiteral decodes a length-prefixed literal: a decimal count followed by
// exactly that many bytes. The count must be at least one, and a count that
// exceeds the remaining input is a truncation error, never an out-of-bounds
// read.
func (s *Scanner) ReadLiteral() (string, error) {
	n, err := s.ReadNatural()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", ErrBadNumeral
	}
	if s.offset+n > len(s.data) {
		return "", ErrTruncatedLiteral
	}
	v := s.data[s.offset : s.offset+n]
	s.offset += n
	return v, nil
}
