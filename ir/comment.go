package ir

// Position tags where a comment sits relative to its subject.
type Position int

const (
	Hashbang Position = iota
	Introducing
	Closing
	PrecedingKey
	Trailing
)

func (p Position) String() string {
	return map[Position]string{
		Hashbang:     "Hashbang",
		Introducing:  "Introducing",
		Closing:      "Closing",
		PrecedingKey: "PrecedingKey",
		Trailing:     "Trailing",
	}[p]
}

// Comment is opaque UTF-8 comment text bound to exactly one subject.
// Text may span lines. Exactly one of Subject and SubjectKey is set,
// except for the hashbang, whose subject is the file itself.
type Comment struct {
	Text       string
	Position   Position
	Subject    *Node
	SubjectKey *Key
}
