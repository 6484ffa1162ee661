package page_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-pagegen/pkg/component"
	"github.com/goliatone/go-pagegen/pkg/components/page"
	"github.com/goliatone/go-pagegen/pkg/config"
	"github.com/goliatone/go-pagegen/pkg/fragment"
	"github.com/goliatone/go-pagegen/pkg/render/template/gotemplate"
)

type stubChild struct {
	component.Base
	output string
}

func (s *stubChild) Render(context.Context, *component.Scope, string) (string, error) {
	return s.output, nil
}

func childConstructor(componentType, output string) component.Constructor {
	return func(*component.Runtime) (component.Component, error) {
		return &stubChild{Base: component.NewBase(componentType), output: output}, nil
	}
}

type harness struct {
	rt       *component.Runtime
	registry *component.Registry
	cfg      *config.Components
}

func newHarness(t *testing.T, store config.Store) *harness {
	t.Helper()
	templates, err := gotemplate.New()
	if err != nil {
		t.Fatalf("create template engine: %v", err)
	}
	registry := component.NewRegistry()
	cfg := config.NewComponents(store)
	rt := &component.Runtime{Templates: templates}
	component.NewFactory(registry, component.NewDecoratorRegistry(), cfg, rt)
	return &harness{rt: rt, registry: registry, cfg: cfg}
}

func TestRender_ConcatenatesChildrenInOrder(t *testing.T) {
	h := newHarness(t, nil)
	h.registry.MustRegister("cms/page/a", childConstructor("cms/page/a", "[a]"))
	h.registry.MustRegister("cms/page/b", childConstructor("cms/page/b", "[b]"))
	h.cfg.SetDefaultChildren(page.Type, "a", "b")

	p, err := page.New(h.rt, page.Type, page.WithTitle("Home"))
	if err != nil {
		t.Fatalf("new page: %v", err)
	}

	html, err := p.Render(context.Background(), component.NewScope(), "uid-1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.HasSuffix(html, "[a][b]") {
		t.Fatalf("children must follow own markup in configured order:\n%s", html)
	}
}

func TestRender_ChildOrderFollowsConfiguration(t *testing.T) {
	store := config.NewMapStore(map[string]any{
		"components/cms/page/children": []string{"b", "a"},
	})
	h := newHarness(t, store)
	h.registry.MustRegister("cms/page/a", childConstructor("cms/page/a", "[a]"))
	h.registry.MustRegister("cms/page/b", childConstructor("cms/page/b", "[b]"))
	h.cfg.SetDefaultChildren(page.Type, "a", "b")

	p, err := page.New(h.rt, page.Type)
	if err != nil {
		t.Fatalf("new page: %v", err)
	}

	html, err := p.Render(context.Background(), component.NewScope(), "uid-1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasSuffix(html, "[b][a]") {
		t.Fatalf("configured order must win over defaults:\n%s", html)
	}
}

func TestRender_EmitsMessagesMarker(t *testing.T) {
	h := newHarness(t, nil)
	p, err := page.New(h.rt, page.Type, page.WithTitle("Home"))
	if err != nil {
		t.Fatalf("new page: %v", err)
	}

	html, err := p.Render(context.Background(), component.NewScope(), "uid-1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, fragment.Marker(page.MessagesMarker)) {
		t.Fatalf("output must carry the messages marker:\n%s", html)
	}
}

func TestNew_TitleFromConfig(t *testing.T) {
	store := config.NewMapStore(map[string]any{
		"components/cms/page/title": "Contact us",
	})
	h := newHarness(t, store)

	p, err := page.New(h.rt, page.Type)
	if err != nil {
		t.Fatalf("new page: %v", err)
	}

	html, err := p.Render(context.Background(), component.NewScope(), "uid-1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "Contact us") {
		t.Fatalf("configured title missing from output:\n%s", html)
	}
}
