package token

import "bytes"

// Raw is one physical line: the full line bytes without the trailing
// newline, the count of leading tab bytes, and the position of the
// line's first byte. Content beyond the leading tabs is untouched;
// whether deeper tabs are indentation or verbatim content is decided
// by the consumer's context.
type Raw struct {
	Bytes  []byte
	Indent int
	Pos    *Pos
}

// Blank reports whether the line is empty or all whitespace after its
// leading tabs.
func (r *Raw) Blank() bool {
	rest := r.Bytes[r.Indent:]
	if len(rest) == 0 {
		return true
	}
	return len(bytes.TrimLeft(rest, " \t\v\f\r")) == 0
}

// Rest returns the line content after n leading tabs. Lines shorter
// than n tabs yield empty content; callers guard with Indent.
func (r *Raw) Rest(n int) []byte {
	if n > len(r.Bytes) {
		return nil
	}
	return r.Bytes[n:]
}

// Scanner yields the physical lines of a whole in-memory document.
// It owns the document's PosDoc; positions handed out stay valid for
// the life of the scan.
type Scanner struct {
	doc *PosDoc
	off int
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{doc: NewPosDoc(d)}
}

func (s *Scanner) Doc() *PosDoc {
	return s.doc
}

// Next returns the next line and true, or a zero Raw and false at the
// end of input. A final line without a trailing newline is returned
// like any other.
func (s *Scanner) Next() (Raw, bool) {
	d := s.doc.d
	if s.off >= len(d) {
		return Raw{}, false
	}
	start := s.off
	end := start
	for end < len(d) && d[end] != '\n' {
		end++
	}
	line := d[start:end]
	if end < len(d) {
		s.doc.nl(end)
		s.off = end + 1
	} else {
		s.off = end
	}
	indent := 0
	for indent < len(line) && line[indent] == '\t' {
		indent++
	}
	return Raw{Bytes: line, Indent: indent, Pos: s.doc.Pos(start)}, true
}
