// Package page provides the generic container component: it renders its own
// chrome from a template and appends the output of its configured children
// in order.
package page

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/goliatone/go-pagegen/pkg/component"
	"github.com/goliatone/go-pagegen/pkg/fragment"
)

// Type is the component type path the default page registers under.
const Type = "cms/page"

//go:embed templates/page.tpl
var pageTemplate string

// MessagesMarker names the placeholder the page emits where per-request
// status messages belong. The engine binds a resolver entry for it on every
// serve.
const MessagesMarker = "MESSAGES"

// Option customises a page component.
type Option func(*Page)

// WithTitle overrides the configured page title.
func WithTitle(title string) Option {
	return func(p *Page) {
		p.title = title
	}
}

// WithTemplate replaces the embedded markup template.
func WithTemplate(tpl string) Option {
	return func(p *Page) {
		if tpl != "" {
			p.template = tpl
		}
	}
}

// Page is a container component. Its title resolves from configuration
// (components/<type>/title) unless overridden.
type Page struct {
	component.Base
	rt       *component.Runtime
	title    string
	template string
}

// New constructs a page component for componentType.
func New(rt *component.Runtime, componentType string, options ...Option) (*Page, error) {
	if rt == nil {
		return nil, fmt.Errorf("page: runtime is required")
	}
	p := &Page{
		Base:     component.NewBase(componentType),
		rt:       rt,
		template: pageTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.title == "" {
		p.title = rt.Config.Setting(componentType, "title", "")
	}
	return p, nil
}

// Constructor adapts New into a registry constructor for componentType.
func Constructor(componentType string, options ...Option) component.Constructor {
	return func(rt *component.Runtime) (component.Component, error) {
		return New(rt, componentType, options...)
	}
}

// Render implements component.Component.
func (p *Page) Render(ctx context.Context, scope *component.Scope, uid string) (string, error) {
	if p.rt == nil || p.rt.Templates == nil {
		return "", fmt.Errorf("page: template renderer is required")
	}

	data := map[string]any{
		"component_type":  p.Type(),
		"title":           p.title,
		"messages_marker": fragment.Marker(MessagesMarker),
	}
	if scope != nil {
		data["locale"] = scope.Locale
	}

	own, err := p.rt.Templates.RenderString(p.template, data)
	if err != nil {
		return "", fmt.Errorf("page: render %q: %w", p.Type(), err)
	}

	children, err := component.RenderChildren(ctx, p.rt.Factory, p.Type(), scope, uid)
	if err != nil {
		return "", err
	}
	return own + children, nil
}
