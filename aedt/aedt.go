package aedt

// LoadFile parses an entire project file. The result is the root mapping:
// one key per top-level block, typically a single project wrapper, or one
// entry per definition for library-style files. Only a failure to read
// the file is an error; malformed content decodes to whatever the
// fallback rules yield.
func LoadFile(path string) (*Dict, error) {
	lines, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseLines(lines), nil
}

// LoadKeyword parses only the named top-level block of a project file,
// ignoring all other top-level siblings. The result holds at most the
// single key keyword; a file without that block yields an empty mapping.
func LoadKeyword(path, keyword string) (*Dict, error) {
	lines, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseKeyword(lines, keyword), nil
}

// Parse decodes in-memory project text, applying the same line extraction
// and walk as [LoadFile]. It exists for callers that already hold the
// content, such as editor buffers.
func Parse(data []byte) *Dict {
	return parseLines(readLines(data))
}

// ParseKeyword decodes only the named top-level block of in-memory
// project text, like [LoadKeyword] does for a file.
func ParseKeyword(data []byte, keyword string) *Dict {
	return parseKeyword(readLines(data), keyword)
}
