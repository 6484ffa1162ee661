// Package component implements the composition core of the page-building
// engine: the Component capability, the name-to-constructor registries, the
// decorator chain, and the factory that resolves configured component trees.
package component

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-pagegen/pkg/config"
	"github.com/goliatone/go-pagegen/pkg/fragment"
	"github.com/goliatone/go-pagegen/pkg/render"
	"github.com/goliatone/go-pagegen/pkg/render/template"
)

// Component is the composable render/handle unit. Every concrete
// implementation and every decorator satisfies this capability. Instances
// live for one render call and are discarded afterwards.
type Component interface {
	// Type returns the slash-delimited component type path this instance was
	// created for.
	Type() string

	// Render produces this component's own markup plus the concatenation of
	// its configured children's output, in child-list order. uid is the
	// caller-supplied uniqueness token disambiguating multiple placements of
	// the same logical component on one page; it is passed down unchanged to
	// children.
	Render(ctx context.Context, scope *Scope, uid string) (string, error)

	// RewriteCached resolves the placeholder markers in a previously cached
	// fragment (possibly produced in a different request) against the current
	// request's scope. It must be idempotent: applying it to already-resolved
	// content returns the content unchanged.
	RewriteCached(fragmentHTML string, scope *Scope, uid string) (string, error)

	// HandleSubmit consumes request input and may append user-facing messages
	// to scope.Errors. It produces no output and its side effects must run
	// exactly once per request regardless of cache state.
	HandleSubmit(ctx context.Context, scope *Scope) error
}

// Scope carries the request-scoped state threaded through a component tree:
// submitted parameters, the shared error list, the marker resolver bound to
// the current request, and localization. Components append to Errors
// directly instead of going through ambient shared state.
type Scope struct {
	Params     render.Params
	Errors     *render.ErrorList
	Resolver   fragment.Resolver
	Locale     string
	Translator render.Translator
	Logger     zerolog.Logger
}

// ScopeOption customises scope construction.
type ScopeOption func(*Scope)

// WithParams sets the request parameter source.
func WithParams(params render.Params) ScopeOption {
	return func(s *Scope) { s.Params = params }
}

// WithResolver binds the marker resolver for the current request.
func WithResolver(resolver fragment.Resolver) ScopeOption {
	return func(s *Scope) { s.Resolver = resolver }
}

// WithLocale sets the locale used for user-facing strings.
func WithLocale(locale string) ScopeOption {
	return func(s *Scope) { s.Locale = locale }
}

// WithTranslator sets the localization collaborator.
func WithTranslator(t render.Translator) ScopeOption {
	return func(s *Scope) { s.Translator = t }
}

// WithLogger sets the request-scoped logger.
func WithLogger(log zerolog.Logger) ScopeOption {
	return func(s *Scope) { s.Logger = log }
}

// NewScope builds a request scope with a fresh error list and a disabled
// logger unless overridden.
func NewScope(options ...ScopeOption) *Scope {
	s := &Scope{
		Errors: &render.ErrorList{},
		Logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.Errors == nil {
		s.Errors = &render.ErrorList{}
	}
	return s
}

// Translate resolves a user-facing string through the scope's translator,
// falling back to the supplied text.
func (s *Scope) Translate(key, fallback string) string {
	if s == nil {
		return fallback
	}
	return render.Translate(s.Locale, key, fallback, s.Translator, nil)
}

// Runtime bundles the collaborators component constructors receive: the
// template engine, the configuration resolver, the factory for child
// resolution, and a logger. The factory field is populated by NewFactory.
type Runtime struct {
	Templates template.TemplateRenderer
	Config    *config.Components
	Factory   *Factory
	Logger    zerolog.Logger
}

// Base provides the default capability behaviour concrete components embed:
// marker substitution for RewriteCached and a no-op HandleSubmit.
type Base struct {
	componentType string
}

// NewBase constructs a Base for componentType.
func NewBase(componentType string) Base {
	return Base{componentType: componentType}
}

// Type implements Component.
func (b Base) Type() string {
	return b.componentType
}

// RewriteCached substitutes placeholder markers against the scope's
// resolver. Markers with no resolver entry degrade to the empty string;
// gaps are logged at debug level and never surfaced to the end user.
func (b Base) RewriteCached(fragmentHTML string, scope *Scope, _ string) (string, error) {
	var resolver fragment.Resolver
	if scope != nil {
		resolver = scope.Resolver
	}
	out, missing := fragment.SubstituteReport(fragmentHTML, resolver)
	if len(missing) > 0 && scope != nil {
		scope.Logger.Debug().
			Str("component", b.componentType).
			Strs("markers", missing).
			Msg("unresolved placeholder markers")
	}
	return out, nil
}

// HandleSubmit implements Component as a no-op.
func (b Base) HandleSubmit(context.Context, *Scope) error {
	return nil
}
