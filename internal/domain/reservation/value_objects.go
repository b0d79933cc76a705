package reservation

import "strings"

const MaxNotesLength = 500

type Quantity struct {
	value int
}

func NewQuantity(v int) (Quantity, error) {
	if v < 1 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() int { return q.value }

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: trimmed}, nil
}

func (n Notes) String() string { return n.value }

func (n Notes) IsEmpty() bool { return n.value == "" }
