package aedt

import (
	"reflect"
	"testing"
)

func decodeOne(t *testing.T, line string) (string, any) {
	t.Helper()
	d := NewDict()
	DecodeLine(line, d)
	if d.Len() != 1 {
		t.Fatalf("DecodeLine(%q) produced %d keys, want 1", line, d.Len())
	}
	key := d.Keys()[0]
	v, _ := d.Get(key)
	return key, v
}

func TestDecodeLine(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		wantKey string
		wantVal any
	}{
		{"integer value", "foo=3", "foo", 3},
		{"quoted phrase value", "bar='hello world'", "bar", "hello world"},
		{"quoted key", `'Temp Directory'='C:\temp'`, "Temp Directory", `C:\temp`},
		{"bool value", "visible=true", "visible", true},
		{"float value", "offset=0.001", "offset", 0.001},
		{"empty value", "name=", "name", ""},
		{"equals inside quotes", "expr='x=y'", "expr", "x=y"},
		{"marker line", "DrawWireframe", "DrawWireframe", nil},
		{"bare value with spaces", "VersionID=2024 R1", "VersionID=2024 R1", nil},
		{
			"escaped quotes keep raw value",
			`note='it\'s a test'`,
			"note", `'it\'s a test'`,
		},
		{"round bracket list", "mat(1, 2, 3)", "mat", []any{1, 2, 3}},
		{"round bracket single", "pos(0.5)", "pos", []any{0.5}},
		{
			"quoted round bracket list",
			"'Color Table'(255, 0, 0)",
			"Color Table", []any{255, 0, 0},
		},
		{
			"square bracket list",
			"IndexField[3: 0, 5, 9]",
			"IndexField", []any{0, 5, 9},
		},
		{
			"square bracket assignments",
			"map[2: 1='a', 2='b']",
			"map", []any{"1='a'", "2='b'"},
		},
		{
			"comma inside quotes does not split",
			"v(1, 'a,b', 2)",
			"v", []any{1, "a,b", 2},
		},
		{
			"quoted runs inside tuples stay whole",
			"pts(P('a, b'), P('c'))",
			"pts", []any{"P('a, b')", "P('c')"},
		},
		{
			"list key with value decodes the key",
			"mat(1,2)=ignored",
			"mat", []any{1, 2},
		},
		{"empty line", "", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, val := decodeOne(t, tc.line)
			if key != tc.wantKey {
				t.Errorf("key = %q, want %q", key, tc.wantKey)
			}
			if !reflect.DeepEqual(val, tc.wantVal) {
				t.Errorf("value = %#v, want %#v", val, tc.wantVal)
			}
		})
	}
}

func TestSplitOutsideQuotes(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"1,2,3", []string{"1", "2", "3"}},
		{"1, 'a,b', 2", []string{"1", " 'a,b'", " 2"}},
		{"'a,b,c'", []string{"'a,b,c'"}},
		{"a=1, b=2", []string{"a=1", " b=2"}},
		{"", []string{""}},
	}
	for _, tc := range cases {
		if got := splitOutsideQuotes(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitOutsideQuotes(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
