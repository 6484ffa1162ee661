// Package pagegen is the rendering composition layer of a page-building
// engine. It assembles a tree of output-producing components, layers
// cross-cutting behaviour onto any component through configured decorator
// chains, and caches rendered fragments safely by substituting per-request
// values through placeholder markers on every serve.
package pagegen

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-pagegen/pkg/component"
	"github.com/goliatone/go-pagegen/pkg/components/contact"
	"github.com/goliatone/go-pagegen/pkg/components/page"
	"github.com/goliatone/go-pagegen/pkg/config"
	"github.com/goliatone/go-pagegen/pkg/fragment"
	"github.com/goliatone/go-pagegen/pkg/mail"
	"github.com/goliatone/go-pagegen/pkg/render"
	rendertemplate "github.com/goliatone/go-pagegen/pkg/render/template"
	"github.com/goliatone/go-pagegen/pkg/render/template/gotemplate"
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithStore injects the configuration store components and decorator lists
// resolve from.
func WithStore(store config.Store) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}

// WithComponent registers a component constructor under componentType.
func WithComponent(componentType string, ctor component.Constructor) Option {
	return func(e *Engine) {
		if err := e.registry.Register(componentType, ctor); err != nil && e.initErr == nil {
			e.initErr = err
		}
	}
}

// WithDecorator registers a decorator constructor under name.
func WithDecorator(name string, ctor component.DecoratorConstructor) Option {
	return func(e *Engine) {
		if err := e.decorators.Register(name, ctor); err != nil && e.initErr == nil {
			e.initErr = err
		}
	}
}

// WithTemplates injects a custom template renderer.
func WithTemplates(renderer rendertemplate.TemplateRenderer) Option {
	return func(e *Engine) {
		if renderer != nil {
			e.templates = renderer
		}
	}
}

// WithCache injects a fragment cache, replacing the built-in unbounded one.
func WithCache(cache *fragment.Cache) Option {
	return func(e *Engine) {
		if cache != nil {
			e.cache = cache
		}
	}
}

// WithTranslator sets the localization collaborator used for user-facing
// strings.
func WithTranslator(t render.Translator) Option {
	return func(e *Engine) {
		e.translator = t
	}
}

// WithDispatcher sets the outbound message collaborator handed to the
// built-in contact component.
func WithDispatcher(d mail.Dispatcher) Option {
	return func(e *Engine) {
		if d != nil {
			e.dispatcher = d
		}
	}
}

// WithLogger injects a structured logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithThemeSelector resolves a go-theme selection ahead of rendering and
// exposes its tokens to component templates as global template data.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(e *Engine) {
		e.themeSelector = selector
		e.themeName = name
		e.themeVariant = variant
	}
}

// WithDefaultChildren registers the fallback child list for componentType
// used when the store carries no override.
func WithDefaultChildren(componentType string, names ...string) Option {
	return func(e *Engine) {
		e.defaultChildren = append(e.defaultChildren, defaultChildren{
			componentType: componentType,
			names:         names,
		})
	}
}

// WithoutBuiltins skips registration of the built-in page and contact
// components.
func WithoutBuiltins() Option {
	return func(e *Engine) {
		e.skipBuiltins = true
	}
}

type defaultChildren struct {
	componentType string
	names         []string
}

// Engine coordinates component resolution, decorator wrapping, fragment
// caching, and marker substitution. It applies sensible defaults (in-memory
// store, built-in components, string-template engine) while remaining open
// to dependency injection.
type Engine struct {
	store      config.Store
	components *config.Components
	registry   *component.Registry
	decorators *component.DecoratorRegistry
	factory    *component.Factory
	cache      *fragment.Cache
	templates  rendertemplate.TemplateRenderer
	translator render.Translator
	dispatcher mail.Dispatcher

	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string

	log             zerolog.Logger
	skipBuiltins    bool
	defaultChildren []defaultChildren
	initErr         error
}

// New constructs an engine applying any provided options.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		registry:   component.NewRegistry(),
		decorators: component.NewDecoratorRegistry(),
		log:        zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.initErr != nil {
		return nil, fmt.Errorf("pagegen: %w", e.initErr)
	}
	if err := e.applyDefaults(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) applyDefaults() error {
	if e.store == nil {
		e.store = config.NewMapStore(nil)
	}
	e.components = config.NewComponents(e.store)
	for _, dc := range e.defaultChildren {
		e.components.SetDefaultChildren(dc.componentType, dc.names...)
	}

	if e.dispatcher == nil {
		e.dispatcher = mail.NewLogDispatcher(e.log)
	}

	if e.templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithTemplateFunc(render.TemplateI18nFuncs(e.translator, render.TemplateI18nConfig{})),
		)
		if err != nil {
			return fmt.Errorf("pagegen: default template engine: %w", err)
		}
		e.templates = engine
	}

	if err := e.applyTheme(); err != nil {
		return err
	}

	if e.cache == nil {
		e.cache = fragment.NewCache(fragment.WithCacheLogger(e.log))
	}

	runtime := &component.Runtime{
		Templates: e.templates,
		Logger:    e.log,
	}
	e.factory = component.NewFactory(e.registry, e.decorators, e.components, runtime)

	if !e.skipBuiltins {
		if !e.registry.Has(page.Type) {
			e.registry.MustRegister(page.Type, page.Constructor(page.Type))
		}
		if !e.registry.Has(contact.Type) {
			e.registry.MustRegister(contact.Type, contact.Constructor(contact.WithDispatcher(e.dispatcher)))
		}
	}
	return nil
}

// applyTheme resolves the configured go-theme selection and publishes its
// tokens as template globals so component markup can reference them.
func (e *Engine) applyTheme() error {
	if e.themeSelector == nil {
		return nil
	}

	selection, err := e.themeSelector.Select(e.themeName, e.themeVariant)
	if err != nil {
		return fmt.Errorf("pagegen: select theme %q/%q: %w", e.themeName, e.themeVariant, err)
	}
	if selection == nil {
		return nil
	}

	tokens := themeTokens(selection)
	cssVars := make(map[string]string, len(tokens))
	for name, value := range tokens {
		cssVars["--"+name] = value
	}

	return e.templates.GlobalContext(map[string]any{
		"theme": map[string]any{
			"name":     selection.Theme,
			"variant":  selection.Variant,
			"tokens":   tokens,
			"css_vars": cssVars,
		},
	})
}

func themeTokens(selection *theme.Selection) map[string]string {
	tokens := make(map[string]string)
	manifest := selection.Manifest
	if manifest == nil {
		return tokens
	}
	for name, value := range manifest.Tokens {
		tokens[name] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for name, value := range variant.Tokens {
			tokens[name] = value
		}
	}
	return tokens
}

// Request describes one render of a component tree.
type Request struct {
	// Type is the slash-delimited component type path to render.
	Type string

	// SubName selects a sub-name-qualified implementation variant. Empty
	// falls back to the canonical resolution order.
	SubName string

	// UID disambiguates multiple placements of the same logical component on
	// one page; it feeds the cache key. Generated when empty.
	UID string

	// Params is the request parameter source handed to components.
	Params render.Params

	// Submitted marks the request as a form submission: the component's
	// HandleSubmit runs exactly once, before any cache interaction.
	Submitted bool

	// Resolver supplies per-request marker values (tokens, nonces). Engine
	// built-ins (status messages) resolve after it.
	Resolver fragment.Resolver

	// Locale selects the language for user-facing strings.
	Locale string

	// NoCache bypasses the fragment cache for this request.
	NoCache bool
}

// Result carries the served fragment plus the user-facing messages
// accumulated while processing the request.
type Result struct {
	HTML     []byte
	Messages []string
	// Cached reports whether the fragment was served from the cache.
	Cached bool
}

// Render executes the create → submit → cache-or-render → substitute
// sequence for one request. Marker substitution runs on every serve, cached
// or fresh, so the same cached bytes stay safe across sessions.
func (e *Engine) Render(ctx context.Context, req Request) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("pagegen: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Type == "" {
		return nil, errors.New("pagegen: component type is required")
	}

	uid := req.UID
	if uid == "" {
		uid = fragment.NewUID()
	}

	scope := component.NewScope(
		component.WithParams(req.Params),
		component.WithLocale(req.Locale),
		component.WithTranslator(e.translator),
		component.WithLogger(e.log),
	)

	comp, err := e.factory.Create(req.Type, req.SubName)
	if err != nil {
		return nil, fmt.Errorf("pagegen: create %q: %w", req.Type, err)
	}

	if req.Submitted {
		if err := comp.HandleSubmit(ctx, scope); err != nil {
			return nil, fmt.Errorf("pagegen: handle submit %q: %w", req.Type, err)
		}
	}

	key := fragment.Key{Type: req.Type, UID: uid}
	var fragmentHTML string
	cached := false
	if !req.NoCache {
		fragmentHTML, cached = e.cache.Get(key)
	}
	if !cached {
		fragmentHTML, err = comp.Render(ctx, scope, uid)
		if err != nil {
			return nil, fmt.Errorf("pagegen: render %q: %w", req.Type, err)
		}
		if !req.NoCache {
			e.cache.Put(key, fragmentHTML)
		}
	}

	scope.Resolver = e.requestResolver(scope, req.Resolver)
	out, err := comp.RewriteCached(fragmentHTML, scope, uid)
	if err != nil {
		return nil, fmt.Errorf("pagegen: rewrite %q: %w", req.Type, err)
	}

	return &Result{
		HTML:     []byte(out),
		Messages: scope.Errors.Messages(),
		Cached:   cached,
	}, nil
}

// requestResolver layers the engine's built-in markers behind the
// caller-supplied resolver. Status messages and echoed submission values
// resolve per serve so they are never part of the cached bytes.
func (e *Engine) requestResolver(scope *component.Scope, base fragment.Resolver) fragment.Resolver {
	return fragment.ResolverFunc(func(name string) (string, bool) {
		if base != nil {
			if value, ok := base.Resolve(name); ok {
				return value, true
			}
		}
		if field, ok := fragment.ParamName(name); ok {
			if scope.Params == nil {
				return "", true
			}
			value, _ := scope.Params.Param(field)
			return render.SanitizeValue(value), true
		}
		if name == page.MessagesMarker {
			return render.MessagesHTML(scope.Errors.Messages()), true
		}
		return "", false
	})
}

// Types returns the registered component type paths in sorted order.
func (e *Engine) Types() []string {
	return e.registry.List()
}

// Factory exposes the component factory for callers that resolve trees
// themselves.
func (e *Engine) Factory() *component.Factory {
	return e.factory
}

// RenderHTML constructs a one-off engine and renders componentType, the
// simplest entry point for callers that just want the markup.
func RenderHTML(ctx context.Context, componentType, uid string, options ...Option) ([]byte, error) {
	engine, err := New(options...)
	if err != nil {
		return nil, err
	}
	result, err := engine.Render(ctx, Request{Type: componentType, UID: uid})
	if err != nil {
		return nil, err
	}
	return result.HTML, nil
}
