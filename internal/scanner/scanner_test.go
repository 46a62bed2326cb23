package scanner

import (
	"errors"
	"testing"
)

func TestReadNatural(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		rest    string
		wantErr error
	}{
		{name: "single digit", input: "7", want: 7, rest: ""},
		{name: "multiple digits", input: "42abc", want: 42, rest: "abc"},
		{name: "zero", input: "0_", want: 0, rest: "_"},
		{name: "leading zeros", input: "007x", want: 7, rest: "x"},
		{name: "stops at non-digit", input: "12_34", want: 12, rest: "_34"},
		{name: "no digits", input: "abc", wantErr: ErrBadNumeral},
		{name: "empty", input: "", wantErr: ErrBadNumeral},
		{name: "overflowing value", input: "99999999999999999999", wantErr: ErrBadNumeral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.input)
			got, err := s.ReadNatural()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadNatural() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got != tt.want {
				t.Errorf("ReadNatural() = %d, want %d", got, tt.want)
			}
			if s.Rest() != tt.rest {
				t.Errorf("Rest() = %q, want %q", s.Rest(), tt.rest)
			}
		})
	}
}

func TestReadNaturalFailureKeepsPosition(t *testing.T) {
	s := New("99999999999999999999")
	if _, err := s.ReadNatural(); !errors.Is(err, ErrBadNumeral) {
		t.Fatalf("ReadNatural() error = %v, want %v", err, ErrBadNumeral)
	}
	if s.Offset() != 0 {
		t.Errorf("Offset() = %d after failed read, want 0", s.Offset())
	}
}

func TestReadLiteral(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		rest    string
		wantErr error
	}{
		{name: "exact", input: "3foo", want: "foo", rest: ""},
		{name: "with trailing input", input: "1x2yz", want: "x", rest: "2yz"},
		{name: "count zero", input: "0abc", wantErr: ErrBadNumeral},
		{name: "count past end", input: "5ab", wantErr: ErrTruncatedLiteral},
		{name: "missing count", input: "foo", wantErr: ErrBadNumeral},
		{name: "empty", input: "", wantErr: ErrBadNumeral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.input)
			got, err := s.ReadLiteral()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadLiteral() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got != tt.want {
				t.Errorf("ReadLiteral() = %q, want %q", got, tt.want)
			}
			if s.Rest() != tt.rest {
				t.Errorf("Rest() = %q, want %q", s.Rest(), tt.rest)
			}
		})
	}
}

func TestByteAccessors(t *testing.T) {
	s := New("ab")

	if got := s.Peek(); got != 'a' {
		t.Errorf("Peek() = %q, want 'a'", got)
	}
	if got := s.PeekAt(1); got != 'b' {
		t.Errorf("PeekAt(1) = %q, want 'b'", got)
	}
	if got := s.PeekAt(2); got != 0 {
		t.Errorf("PeekAt(2) = %q, want 0", got)
	}
	if s.Offset() != 0 {
		t.Errorf("Offset() = %d after peeks, want 0", s.Offset())
	}

	c, err := s.Next()
	if err != nil || c != 'a' {
		t.Fatalf("Next() = %q, %v, want 'a', nil", c, err)
	}
	if s.NextIf('x') {
		t.Error("NextIf('x') = true, want false")
	}
	if !s.NextIf('b') {
		t.Error("NextIf('b') = false, want true")
	}
	if !s.EOF() {
		t.Error("EOF() = false after consuming all input")
	}
	if _, err := s.Next(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("Next() at end error = %v, want %v", err, ErrUnexpectedEOF)
	}
	if got := s.Peek(); got != 0 {
		t.Errorf("Peek() at end = %q, want 0", got)
	}
}

func TestConsume(t *testing.T) {
	s := New("_TtSi")

	if s.Consume("_X") {
		t.Error(`Consume("_X") = true, want false`)
	}
	if s.Offset() != 0 {
		t.Errorf("Offset() = %d after failed Consume, want 0", s.Offset())
	}
	if !s.Consume("_T") {
		t.Error(`Consume("_T") = false, want true`)
	}
	if s.Rest() != "tSi" {
		t.Errorf("Rest() = %q, want %q", s.Rest(), "tSi")
	}
	if s.Consume("tSiX") {
		t.Error(`Consume("tSiX") past end = true, want false`)
	}
	if s.Remaining() != 3 {
		t.Errorf("Remaining() = %d, want 3", s.Remaining())
	}
}
