package optable

import (
	"fmt"
	"io"
	"slices"
)

// Table is the set of opcode records extracted from one header, in
// encounter order, along with the operand-format tags the header declares.
type Table struct {
	Records []Record
	Formats []string // FMT() tags, in declaration order.
}

// Lookup finds a record by its bare (untagged) opcode name.
func (tab *Table) Lookup(name string) *Record {
	for n := range tab.Records {
		if tab.Records[n].Name == name {
			return &tab.Records[n]
		}
	}
	return nil
}

// UnknownFormats returns the format tags used by records but never declared
// by a FMT() row. A header with no FMT() rows declares no vocabulary, and
// nothing is reported for it.
func (tab *Table) UnknownFormats() (unknown []string) {
	if len(tab.Formats) == 0 {
		return
	}

	for _, rec := range tab.Records {
		if slices.Contains(tab.Formats, rec.Fmt) {
			continue
		}
		if slices.Contains(unknown, rec.Fmt) {
			continue
		}
		unknown = append(unknown, rec.Fmt)
	}

	return
}

// Dump writes every record line to the output, in index order.
func (tab *Table) Dump(w io.Writer) error {
	for n := range tab.Records {
		_, err := fmt.Fprintln(w, tab.Records[n].Line())
		if err != nil {
			return err
		}
	}
	return nil
}
