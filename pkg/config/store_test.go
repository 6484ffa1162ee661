package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagegen/pkg/config"
)

func TestLoadYAML_FlattensNestedSections(t *testing.T) {
	payload := []byte(`
components:
  cms:
    page:
      title: Welcome
      children:
        - contact
        - footer
      contact:
        recipient: team@example.com
`)

	store, err := config.LoadYAML(payload)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}

	if got := store.String("components/cms/page/title", ""); got != "Welcome" {
		t.Fatalf("unexpected title: %q", got)
	}
	if got := store.String("components/cms/page/contact/recipient", ""); got != "team@example.com" {
		t.Fatalf("unexpected recipient: %q", got)
	}
	want := []string{"contact", "footer"}
	if diff := cmp.Diff(want, store.Strings("components/cms/page/children", nil)); diff != "" {
		t.Fatalf("unexpected children (-want +got):\n%s", diff)
	}
}

func TestMapStore_Fallbacks(t *testing.T) {
	store := config.NewMapStore(map[string]any{
		"site/name": "demo",
	})

	if got := store.String("site/name", "fallback"); got != "demo" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := store.String("site/missing", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	want := []string{"x", "y"}
	if diff := cmp.Diff(want, store.Strings("site/missing", []string{"x", "y"})); diff != "" {
		t.Fatalf("expected fallback list (-want +got):\n%s", diff)
	}
}

func TestMapStore_ScalarPromotesToList(t *testing.T) {
	store := config.NewMapStore(map[string]any{
		"components/cms/page/children": "only",
	})

	want := []string{"only"}
	if diff := cmp.Diff(want, store.Strings("components/cms/page/children", nil)); diff != "" {
		t.Fatalf("scalar not promoted (-want +got):\n%s", diff)
	}
}

func TestLoadYAML_Invalid(t *testing.T) {
	if _, err := config.LoadYAML([]byte("components: [")); err == nil {
		t.Fatal("expected parse error")
	}
}
