package aedt

import (
	"strings"
	"unicode"
)

// DecodeLine decodes one non-marker line into exactly one key of into.
//
// The line is first split into a key and a raw value using the two
// key=value shapes (quoted key, unquoted key). A split is rejected when
// the value carries bare whitespace, which means the `=` belonged to the
// value of a line that has no key at all; such lines, like lines with no
// `=`, become anonymous marker keys with a nil value. The resulting key
// is then tested for the inline list conventions `Key(items)` and
// `Key[n: items]` before falling back to scalar coercion.
func DecodeLine(line string, into *Dict) {
	key, value, ok := splitKeyValue(line)
	if ok && !acceptValue(value) {
		ok = false
	}
	if !ok {
		key, value = line, ""
	}
	if name, items, isList := roundBracketList(key); isList {
		into.Set(name, splitListElements(items))
		return
	}
	if name, items, isList := squareBracketList(key); isList {
		into.Set(name, splitListElements(items))
		return
	}
	if !ok {
		into.Set(key, nil)
		return
	}
	into.Set(key, coerceValue(value))
}

// splitKeyValue tries the two key=value shapes in order: a quoted key,
// which may contain spaces, then an unquoted key, which may not. ok is
// false when the line has neither.
func splitKeyValue(line string) (key, value string, ok bool) {
	if strings.HasPrefix(line, "'") {
		if i := strings.Index(line[1:], "'"); i >= 0 {
			if rest := line[i+2:]; strings.HasPrefix(rest, "=") {
				return line[1 : i+1], rest[1:], true
			}
		}
	}
	if i := strings.IndexByte(line, '='); i > 0 {
		if k := line[:i]; !hasSpace(k) {
			return k, line[i+1:], true
		}
	}
	return "", "", false
}

// acceptValue decides whether a candidate value really belongs to its key.
// Escaped apostrophes are swapped for double quotes first so the quoted-run
// test below does not see them as closing quotes; the substitution is for
// this decision only and never reaches the stored value. A value is kept
// when it has no whitespace at all, or when its leading run is a quoted
// phrase that legitimately contains whitespace.
func acceptValue(value string) bool {
	norm := strings.ReplaceAll(value, `\'`, `"`)
	return !hasSpace(norm) || leadingQuotedPhrase(norm)
}

// leadingQuotedPhrase reports whether s starts with a single-quoted run
// that itself contains whitespace, e.g. `'hello world'`.
func leadingQuotedPhrase(s string) bool {
	if !strings.HasPrefix(s, "'") {
		return false
	}
	i := strings.Index(s[1:], "'")
	if i < 0 {
		return false
	}
	return hasSpace(s[1 : i+1])
}

// roundBracketList matches the inline list shapes `Key(items)` and
// `'Key With Spaces'(items)`, in that order. The unquoted shape is tried
// first, so a quoted key without spaces keeps its quotes, mirroring how
// such keys decode elsewhere.
func roundBracketList(key string) (name, items string, ok bool) {
	if i := strings.IndexByte(key, '('); i > 0 && !hasSpace(key[:i]) &&
		strings.HasSuffix(key, ")") && len(key) > i+2 {
		return key[:i], key[i+1 : len(key)-1], true
	}
	if name, rest, ok := quotedSpacedName(key); ok {
		if strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")") && len(rest) > 2 {
			return name, rest[1 : len(rest)-1], true
		}
	}
	return "", "", false
}

// squareBracketList matches the counted list shapes `Key[n: items]` and
// `'Key With Spaces'[n: items]`. The element count before the colon is
// redundant with the items themselves and is discarded.
func squareBracketList(key string) (name, items string, ok bool) {
	if i := strings.IndexByte(key, '['); i > 0 && !hasSpace(key[:i]) &&
		strings.HasSuffix(key, "]") {
		if items, ok := countedItems(key[i+1 : len(key)-1]); ok {
			return key[:i], items, true
		}
	}
	if name, rest, ok := quotedSpacedName(key); ok {
		if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
			if items, ok := countedItems(rest[1 : len(rest)-1]); ok {
				return name, items, true
			}
		}
	}
	return "", "", false
}

// quotedSpacedName splits a leading `'name'` run off key when the name
// contains interior whitespace, returning the de-quoted name and the rest.
func quotedSpacedName(key string) (name, rest string, ok bool) {
	if !strings.HasPrefix(key, "'") {
		return "", "", false
	}
	i := strings.Index(key[1:], "'")
	if i < 0 {
		return "", "", false
	}
	name = key[1 : i+1]
	if !hasInteriorSpace(name) {
		return "", "", false
	}
	return name, key[i+2:], true
}

// countedItems strips the `<count>:` prefix from the body of a square
// bracket list. The count must be all digits and the items non-empty.
func countedItems(body string) (string, bool) {
	j := strings.IndexByte(body, ':')
	if j <= 0 {
		return "", false
	}
	for _, c := range body[:j] {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	items := body[j+1:]
	if items == "" {
		return "", false
	}
	return items, true
}

// splitListElements splits an inline list body and coerces each element.
// A body carrying parentheses, assignments or quoted runs splits only on
// commas outside quotes, so structured sub-expressions stay whole; plain
// bodies split on every comma.
func splitListElements(items string) []any {
	var parts []string
	if strings.ContainsAny(items, "(='") {
		parts = splitOutsideQuotes(items)
	} else {
		parts = strings.Split(items, ",")
	}
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		out = append(out, coerceValue(strings.TrimSpace(part)))
	}
	return out
}

// splitOutsideQuotes splits s on commas that are followed by an even
// number of apostrophes, i.e. commas sitting outside any quoted run.
// Unbalanced quoting keeps whatever this parity rule yields.
func splitOutsideQuotes(s string) []string {
	total := strings.Count(s, "'")
	var parts []string
	start, seen := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			seen++
		case ',':
			if (total-seen)%2 == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// hasInteriorSpace reports whitespace that has at least one character on
// each side, which is what qualifies a quoted name as "spaced".
func hasInteriorSpace(s string) bool {
	runes := []rune(s)
	for i := 1; i < len(runes)-1; i++ {
		if unicode.IsSpace(runes[i]) {
			return true
		}
	}
	return false
}
