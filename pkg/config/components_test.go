package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagegen/pkg/config"
)

func TestComponents_ChildrenFallsBackToDefaults(t *testing.T) {
	components := config.NewComponents(config.NewMapStore(nil))
	components.SetDefaultChildren("cms/page", "header", "body")

	want := []string{"header", "body"}
	if diff := cmp.Diff(want, components.Children("cms/page")); diff != "" {
		t.Fatalf("defaults not applied (-want +got):\n%s", diff)
	}
}

func TestComponents_ChildrenOverrideWins(t *testing.T) {
	store := config.NewMapStore(map[string]any{
		"components/cms/page/children": []string{"contact"},
	})
	components := config.NewComponents(store)
	components.SetDefaultChildren("cms/page", "header", "body")

	want := []string{"contact"}
	if diff := cmp.Diff(want, components.Children("cms/page")); diff != "" {
		t.Fatalf("override not honoured (-want +got):\n%s", diff)
	}
}

func TestComponents_DecoratorKinds(t *testing.T) {
	store := config.NewMapStore(map[string]any{
		"components/cms/page/decorators/global":   []string{"cache"},
		"components/cms/page/decorators/local":    []string{"frame"},
		"components/cms/page/decorators/excludes": []string{"cache"},
	})
	components := config.NewComponents(store)

	tests := []struct {
		kind config.DecoratorKind
		want []string
	}{
		{config.DecoratorGlobal, []string{"cache"}},
		{config.DecoratorLocal, []string{"frame"}},
		{config.DecoratorExcludes, []string{"cache"}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, components.Decorators("cms/page", tc.kind)); diff != "" {
			t.Fatalf("kind %s (-want +got):\n%s", tc.kind, diff)
		}
	}
}

func TestComponents_GlobalFallsBackToFrameworkList(t *testing.T) {
	store := config.NewMapStore(map[string]any{
		"components/decorators/global": []string{"audit", "cache"},
	})
	components := config.NewComponents(store)

	want := []string{"audit", "cache"}
	if diff := cmp.Diff(want, components.Decorators("cms/page", config.DecoratorGlobal)); diff != "" {
		t.Fatalf("framework fallback missing (-want +got):\n%s", diff)
	}

	// Local and excludes never inherit the framework list.
	if got := components.Decorators("cms/page", config.DecoratorLocal); got != nil {
		t.Fatalf("expected empty local list, got %v", got)
	}
	if got := components.Decorators("cms/page", config.DecoratorExcludes); got != nil {
		t.Fatalf("expected empty excludes list, got %v", got)
	}
}

func TestComponents_Setting(t *testing.T) {
	store := config.NewMapStore(map[string]any{
		"components/cms/page/title": "Home",
	})
	components := config.NewComponents(store)

	if got := components.Setting("cms/page", "title", ""); got != "Home" {
		t.Fatalf("unexpected setting: %q", got)
	}
	if got := components.Setting("cms/page", "missing", "fallback"); got != "fallback" {
		t.Fatalf("fallback not applied: %q", got)
	}
}

func TestComponents_FreshLookupObservesStoreChanges(t *testing.T) {
	store := &mutableStore{
		lists: map[string][]string{
			"components/cms/page/children": {"a"},
		},
	}
	components := config.NewComponents(store)

	if diff := cmp.Diff([]string{"a"}, components.Children("cms/page")); diff != "" {
		t.Fatalf("initial lookup (-want +got):\n%s", diff)
	}

	store.lists["components/cms/page/children"] = []string{"b", "a"}
	if diff := cmp.Diff([]string{"b", "a"}, components.Children("cms/page")); diff != "" {
		t.Fatalf("lookup cached stale config (-want +got):\n%s", diff)
	}
}

type mutableStore struct {
	lists map[string][]string
}

func (s *mutableStore) String(string, string) string { return "" }

func (s *mutableStore) Strings(key string, fallback []string) []string {
	if values, ok := s.lists[key]; ok {
		return values
	}
	return fallback
}
