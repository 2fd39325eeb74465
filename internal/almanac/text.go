package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
	headerSep    = "-to-"
)

// Parse reads the text layout. name is only used in error messages.
func Parse(r io.Reader, name string) (*Document, error) {
	doc := &Document{}
	var (
		cur       *Map
		seenSeeds bool
		ln        int
	)
	fail := func(format string, a ...any) error {
		return &ParseError{Path: name, Line: ln, Err: fmt.Errorf(format, a...)}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 4<<20)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			// a blank line closes the current block
			cur = nil

		case line[0] == '#':

		case strings.HasPrefix(line, seedsPrefix):
			if seenSeeds {
				return nil, fail("duplicate seeds line")
			}
			seenSeeds = true
			vals, err := parseInts(strings.Fields(line[len(seedsPrefix):]))
			if err != nil {
				return nil, fail("seeds: %v", err)
			}
			doc.Seeds = vals

		case strings.HasSuffix(line, headerSuffix):
			from, to, ok := strings.Cut(strings.TrimSuffix(line, headerSuffix), headerSep)
			if !ok || from == "" || to == "" || strings.ContainsAny(from+to, " \t") {
				return nil, fail("bad map header %q (want <from>-to-<to> map:)", line)
			}
			doc.Maps = append(doc.Maps, Map{From: from, To: to, Line: ln})
			cur = &doc.Maps[len(doc.Maps)-1]

		default:
			if cur == nil {
				return nil, fail("rule line %q outside of a map block", line)
			}
			f := strings.Fields(line)
			if len(f) != 3 {
				return nil, fail("bad field count %d (want dest src length)", len(f))
			}
			vals, err := parseInts(f)
			if err != nil {
				return nil, fail("%v", err)
			}
			cur.Rules = append(cur.Rules, RuleSpec{Dest: vals[0], Src: vals[1], Length: vals[2]})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	if len(doc.Maps) == 0 && !seenSeeds {
		return nil, &ParseError{Path: name, Err: errors.New("no seeds and no maps found")}
	}
	return doc, nil
}

func parseInts(fields []string) ([]int64, error) {
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}
