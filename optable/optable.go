package optable

import (
	"fmt"
	"strconv"
)

// Record is a single opcode definition extracted from a header. The Size,
// Pop, Push, and Fmt fields carry the matched text verbatim, so that the
// rendered listing reproduces the header character for character.
type Record struct {
	Index  int    // Sequential index, assigned in encounter order.
	LineNo int    // Line number of the definition in the header.
	Name   string // Bare opcode name, without the OP_ tag.
	Size   string // Encoded instruction size in bytes.
	Pop    string // Number of stack values consumed.
	Push   string // Number of stack values produced.
	Fmt    string // Operand format tag.
}

// Opcode returns the OP_-tagged opcode name.
func (rec *Record) Opcode() string {
	return "OP_" + rec.Name
}

// Line renders the record as a tab-separated listing row.
func (rec *Record) Line() string {
	return fmt.Sprintf("%d\t0x%02X\t%s\tsize=%s\tpop=%s\tpush=%s\tfmt=%s",
		rec.Index, rec.Index, rec.Opcode(), rec.Size, rec.Pop, rec.Push, rec.Fmt)
}

// SizeBytes returns the encoded instruction size as an integer.
func (rec *Record) SizeBytes() (int, error) {
	return parseCount(rec.Size)
}

// PopCount returns the number of stack values consumed as an integer.
func (rec *Record) PopCount() (int, error) {
	return parseCount(rec.Pop)
}

// PushCount returns the number of stack values produced as an integer.
func (rec *Record) PushCount() (int, error) {
	return parseCount(rec.Push)
}

// parseCount parses a matched decimal field.
func parseCount(word string) (value int, err error) {
	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}
