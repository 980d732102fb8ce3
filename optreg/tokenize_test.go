//nolint:testpackage // using package name 'optreg' to access unexported fields for testing
package optreg

import (
	"reflect"
	"testing"
)

func TestTokenizeGNU(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"a b c", []string{"a", "b", "c"}},
		{"a\tb\nc", []string{"a", "b", "c"}},
		{`-o out.txt`, []string{"-o", "out.txt"}},
		{`"two words"`, []string{"two words"}},
		{`'single $quoted'`, []string{"single $quoted"}},
		{`esc\ aped`, []string{"esc aped"}},
		{`"inner \"quote\""`, []string{`inner "quote"`}},
		{`"back\\slash"`, []string{`back\slash`}},
		{`mixed"quo ted"end`, []string{"mixedquo tedend"}},
		{`""`, []string{""}},
	}
	for _, tc := range cases {
		got := TokenizeGNU(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("TokenizeGNU(%q): Expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTokenizeWindows(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a b", []string{"a", "b"}},
		{`"two words"`, []string{"two words"}},
		{`back\slash`, []string{`back\slash`}},
		{`\\server\share`, []string{`\\server\share`}},
		{`\"literal`, []string{`"literal`}},
		{`\\"`, []string{`\`}},
		{`"doubled ""quote"""`, []string{`doubled "quote"`}},
		{`a"b c"d`, []string{"ab cd"}},
	}
	for _, tc := range cases {
		got := TokenizeWindows(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("TokenizeWindows(%q): Expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
