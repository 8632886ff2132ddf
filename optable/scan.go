// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package optable

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"slices"
	"strings"
)

// defPattern matches a DEF(name, size, n_pop, n_push, fmt, ...) macro row.
// Only the first five arguments are captured; the remainder of the line,
// closing parenthesis included, is ignored. Both the DEF and def spellings
// of the macro are recognized.
var defPattern = regexp.MustCompile(`^(?:DEF|def)\s*\(\s*(\w+)\s*,\s*(\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(\w+)`)

// fmtPattern matches a FMT(tag) operand-format declaration row.
var fmtPattern = regexp.MustCompile(`^FMT\s*\(\s*(\w+)`)

// Scanner extracts opcode definitions from a header text stream.
type Scanner struct {
	Verbose bool    // If set, verbosely logs each scanned line.
	Filter  *Filter // Optional record filter; nil keeps every record.
}

// Parse scans an input stream into a Table of opcode records.
//
// Lines that do not match the definition grammar produce no record and do
// not advance the index counter. Records dropped by the Filter keep their
// place in the index sequence, so surviving records report the same index
// an unfiltered scan would assign them.
func (sc *Scanner) Parse(input io.Reader) (tab *Table, err error) {
	scanner := bufio.NewScanner(input)

	tab = &Table{}

	var lineno int
	var index int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if sc.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line := strings.TrimSpace(text)

		if m := fmtPattern.FindStringSubmatch(line); m != nil {
			if !slices.Contains(tab.Formats, m[1]) {
				tab.Formats = append(tab.Formats, m[1])
			}
			continue
		}

		m := defPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		rec := Record{
			Index:  index,
			LineNo: lineno,
			Name:   m[1],
			Size:   m[2],
			Pop:    m[3],
			Push:   m[4],
			Fmt:    m[5],
		}
		index += 1

		if sc.Filter != nil {
			var keep bool
			keep, err = sc.Filter.Keep(&rec)
			if err != nil {
				err = &ErrScan{LineNo: lineno, Line: line, Err: err}
				return
			}
			if !keep {
				continue
			}
		}

		tab.Records = append(tab.Records, rec)
	}

	if scanner.Err() != nil {
		err = &ErrRead{Err: scanner.Err()}
		return
	}

	return
}
