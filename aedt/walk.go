package aedt

import "strings"

const (
	beginMarker = "$begin '"
	endMarker   = "$end '"
)

// parser is the per-call context for one parse: the decoded line sequence
// and a single cursor shared by every level of the recursive descent.
// Nothing outlives the call, so concurrent parses never interfere.
type parser struct {
	lines []string
	pos   int
}

// beginName extracts the block name from a `$begin '<name>'` marker line.
func beginName(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, beginMarker)
	if !ok {
		return "", false
	}
	name, ok := strings.CutSuffix(rest, "'")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// walk scans forward from the shared cursor for the block named keyword
// and decodes its contents into into[keyword]. Child blocks recurse with
// the same cursor, so position is never rewound. The walk stops on the
// block's own `$end` line without consuming it: advancing past `$end`
// belongs to the caller's loop step, mirroring nested scope unwinding.
// Reaching end of input first simply leaves whatever was assembled, so
// truncated files yield a partial result instead of an error.
//
// When into already holds keyword, the block is a repeated sibling: the
// prior value is promoted to a list and the new mapping appended, keeping
// file order.
func (p *parser) walk(keyword string, into *Dict) {
	beginKey := beginMarker + keyword + "'"
	endKey := endMarker + keyword + "'"

	inside := false
	var current *Dict
	var prior any
	hasPrior := false

	for p.pos < len(p.lines) {
		line := strings.TrimSpace(p.lines[p.pos])
		if line == beginKey {
			inside = true
			prior, hasPrior = into.Get(keyword)
			current = NewDict()
			into.Set(keyword, current)
			p.pos++
			continue
		}
		if line == endKey {
			break
		}
		if inside {
			if child, ok := beginName(line); ok {
				p.walk(child, current)
			} else {
				DecodeLine(line, current)
			}
		}
		p.pos++
	}

	if hasPrior {
		if list, ok := prior.([]any); ok {
			into.Set(keyword, append(list, current))
		} else {
			into.Set(keyword, []any{prior, current})
		}
	}
}

// parseLines decodes a whole document. Every top-level `$begin` marker
// found from the cursor onward starts a walk, so files with one wrapper
// block and library-style files with several sibling blocks at the root
// both decode into a single mapping. Nested markers never trigger here:
// by the time the scan reaches them the cursor is already past their
// block.
func parseLines(lines []string) *Dict {
	root := NewDict()
	p := &parser{lines: lines}
	for p.pos < len(p.lines) {
		if name, ok := beginName(strings.TrimSpace(p.lines[p.pos])); ok {
			p.walk(name, root)
		}
		p.pos++
	}
	return root
}

// parseKeyword decodes only the first top-level block named keyword,
// skipping everything before it and ignoring everything after it.
func parseKeyword(lines []string, keyword string) *Dict {
	root := NewDict()
	p := &parser{lines: lines}
	p.walk(keyword, root)
	return root
}
