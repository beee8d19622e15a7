// Package corpus reads the golden-file fixture format the package's table
// tests draw on: one test case per line, "<literal> <hexbits>", matching the
// layout of the well-known parse-number-fxx-test-data corpus (spec.md §6/§8)
// without vendoring its multi-million-line original.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Case is one fixture line: the input literal and the expected correctly
// rounded bit pattern, written in hex with no "0x" prefix.
type Case struct {
	Literal string
	Bits    uint64
	Line    int
}

// Read parses every non-blank, non-comment ('#') line of r into a Case.
func Read(r io.Reader) ([]Case, error) {
	var cases []Case
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("corpus: line %d: expected 2 fields, got %d", line, len(fields))
		}
		bits, err := strconv.ParseUint(fields[1], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("corpus: line %d: %w", line, err)
		}
		cases = append(cases, Case{Literal: fields[0], Bits: bits, Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}
