package aedt

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// readLines splits raw file content into decoded lines. The first line
// that is not valid UTF-8 marks the start of an embedded binary trailer:
// that line and everything after it is discarded. Leading tabs are nesting
// indentation with no semantic content and are stripped.
func readLines(data []byte) []string {
	var lines []string
	for len(data) > 0 {
		var raw []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			raw, data = data[:i], data[i+1:]
		} else {
			raw, data = data, nil
		}
		if !utf8.Valid(raw) {
			break
		}
		line := strings.TrimSuffix(string(raw), "\r")
		lines = append(lines, strings.TrimLeft(line, "\t"))
	}
	return lines
}

// readFile reads path in binary mode and extracts its text lines. Only
// the read itself can fail; an empty or entirely binary file yields an
// empty line sequence.
func readFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	return readLines(data), nil
}
