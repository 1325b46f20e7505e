package aedt

import (
	"reflect"
	"testing"
)

func TestReadLines(t *testing.T) {
	t.Run("strips leading tabs", func(t *testing.T) {
		got := readLines([]byte("$begin 'A'\n\t\tfoo=1\n$end 'A'\n"))
		want := []string{"$begin 'A'", "foo=1", "$end 'A'"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("readLines = %q, want %q", got, want)
		}
	})

	t.Run("handles crlf", func(t *testing.T) {
		got := readLines([]byte("a=1\r\n\tb=2\r\n"))
		want := []string{"a=1", "b=2"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("readLines = %q, want %q", got, want)
		}
	})

	t.Run("stops at first non-utf8 line", func(t *testing.T) {
		data := []byte("a=1\nb=2\n")
		data = append(data, 0xff, 0xfe, '\n')
		data = append(data, []byte("c=3\n")...)
		got := readLines(data)
		want := []string{"a=1", "b=2"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("readLines = %q, want %q", got, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := readLines(nil); len(got) != 0 {
			t.Errorf("readLines(nil) = %q, want empty", got)
		}
	})

	t.Run("binary from first byte", func(t *testing.T) {
		if got := readLines([]byte{0xc3, 0x28, '\n', 'a'}); len(got) != 0 {
			t.Errorf("readLines = %q, want empty", got)
		}
	})
}

func TestReadFileMissing(t *testing.T) {
	if _, err := readFile("testdata/does-not-exist.aedt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
