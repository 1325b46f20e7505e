package aedt

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCoerceValue(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  any
	}{
		{"true literal", "true", true},
		{"false literal", "false", false},
		{"capitalized bool stays string", "True", "True"},
		{"integer", "42", 42},
		{"negative integer", "-7", -7},
		{"float", "0.05", 0.05},
		{"exponent float", "1e-9", 1e-9},
		{"quoted string", "'hello'", "hello"},
		{"quoted phrase", "'hello world'", "hello world"},
		{"internal quote not stripped", "'a'b'", "'a'b'"},
		{"bare string", "C:\\Users", "C:\\Users"},
		{"empty", "", ""},
		{"lone quote", "'", "'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := coerceValue(tc.token)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("coerceValue(%q) = %#v, want %#v", tc.token, got, tc.want)
			}
		})
	}
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("c", 1)
	d.Set("a", 2)
	d.Set("b", 3)
	d.Set("a", 4) // overwrite keeps position

	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(d.Keys(), want) {
		t.Fatalf("Keys() = %v, want %v", d.Keys(), want)
	}
	if v, _ := d.Get("a"); v != 4 {
		t.Errorf("Get(a) = %v, want 4", v)
	}
}

func TestDictMarshalJSON(t *testing.T) {
	d := NewDict()
	d.Set("z", 1)
	d.Set("nested", func() *Dict {
		n := NewDict()
		n.Set("ok", true)
		return n
	}())
	d.Set("list", []any{1, "a", nil})

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"z":1,"nested":{"ok":true},"list":[1,"a",null]}`
	if string(out) != want {
		t.Errorf("Marshal = %s, want %s", out, want)
	}
}
