package render_test

import (
	"net/url"
	"testing"

	"github.com/goliatone/go-pagegen/pkg/render"
)

func TestValues_Param(t *testing.T) {
	params := render.Values{"name": "Ada", "message": ""}

	if got, ok := params.Param("name"); !ok || got != "Ada" {
		t.Fatalf("Param(name) = %q, %v", got, ok)
	}
	if got, ok := params.Param("message"); !ok || got != "" {
		t.Fatalf("empty value must still report presence: %q, %v", got, ok)
	}
	if _, ok := params.Param("missing"); ok {
		t.Fatal("absent field reported as present")
	}
}

func TestFromURLValues_KeepsFirstValue(t *testing.T) {
	form := url.Values{}
	form.Add("email", "first@example.com")
	form.Add("email", "second@example.com")

	params := render.FromURLValues(form)
	if got, _ := params.Param("email"); got != "first@example.com" {
		t.Fatalf("expected first value, got %q", got)
	}
}

func TestSanitizeValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  plain text  ", "plain text"},
		{"<script>alert(1)</script>hello", "hello"},
		{"<b>bold</b>", "bold"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := render.SanitizeValue(tc.in); got != tc.want {
			t.Fatalf("SanitizeValue(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
