// Package contact implements the contact form component: cache-safe render
// with a per-serve anti-forgery marker, and submission handling with a
// honeypot check and outbound message dispatch.
package contact

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/goliatone/go-pagegen/pkg/component"
	"github.com/goliatone/go-pagegen/pkg/fragment"
	"github.com/goliatone/go-pagegen/pkg/mail"
	"github.com/goliatone/go-pagegen/pkg/render"
)

// Type is the component type path the contact form registers under.
const Type = "cms/page/contact"

// CSRFMarker names the placeholder substituted with the current session's
// anti-forgery token on every serve. The token itself must never reach the
// cached bytes.
const CSRFMarker = "CSRF_TOKEN"

// Submitted field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

//go:embed templates/contact.tpl
var contactTemplate string

// Option customises a contact component.
type Option func(*Contact)

// WithDispatcher sets the outbound message collaborator.
func WithDispatcher(d mail.Dispatcher) Option {
	return func(c *Contact) {
		if d != nil {
			c.dispatcher = d
		}
	}
}

// WithRecipient overrides the configured recipient address.
func WithRecipient(to string) Option {
	return func(c *Contact) {
		c.recipient = strings.TrimSpace(to)
	}
}

// WithHoneypotField renames the hidden field expected to stay empty.
func WithHoneypotField(name string) Option {
	return func(c *Contact) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			c.honeypot = trimmed
		}
	}
}

// WithTemplate replaces the embedded markup template.
func WithTemplate(tpl string) Option {
	return func(c *Contact) {
		if tpl != "" {
			c.template = tpl
		}
	}
}

// Contact renders a contact form and handles its submissions. The recipient
// resolves from configuration (components/cms/page/contact/recipient) unless
// overridden.
type Contact struct {
	component.Base
	rt         *component.Runtime
	dispatcher mail.Dispatcher
	recipient  string
	honeypot   string
	template   string
}

// New constructs a contact component.
func New(rt *component.Runtime, options ...Option) (*Contact, error) {
	if rt == nil {
		return nil, fmt.Errorf("contact: runtime is required")
	}
	c := &Contact{
		Base:     component.NewBase(Type),
		rt:       rt,
		honeypot: "website",
		template: contactTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.recipient == "" {
		c.recipient = rt.Config.Setting(Type, "recipient", "")
	}
	if c.dispatcher == nil {
		c.dispatcher = mail.NewLogDispatcher(rt.Logger)
	}
	return c, nil
}

// Constructor adapts New into a registry constructor.
func Constructor(options ...Option) component.Constructor {
	return func(rt *component.Runtime) (component.Component, error) {
		return New(rt, options...)
	}
}

// Render implements component.Component. Submitted values echo back through
// placeholder markers resolved per serve, so a failed dispatch does not lose
// the visitor's input and the input never reaches cached bytes; the
// anti-forgery token is emitted as a marker the same way.
func (c *Contact) Render(ctx context.Context, scope *component.Scope, uid string) (string, error) {
	if c.rt == nil || c.rt.Templates == nil {
		return "", fmt.Errorf("contact: template renderer is required")
	}

	data := map[string]any{
		"component_type": c.Type(),
		"csrf_marker":    fragment.Marker(CSRFMarker),
		"honeypot":       c.honeypot,
		"value_name":     fragment.ParamMarker(FieldName),
		"value_email":    fragment.ParamMarker(FieldEmail),
		"value_message":  fragment.ParamMarker(FieldMessage),
		"label_name":     scope.Translate("contact.label.name", "Name"),
		"label_email":    scope.Translate("contact.label.email", "Email"),
		"label_message":  scope.Translate("contact.label.message", "Message"),
		"label_submit":   scope.Translate("contact.label.submit", "Send message"),
	}

	own, err := c.rt.Templates.RenderString(c.template, data)
	if err != nil {
		return "", fmt.Errorf("contact: render: %w", err)
	}

	children, err := component.RenderChildren(ctx, c.rt.Factory, c.Type(), scope, uid)
	if err != nil {
		return "", err
	}
	return own + children, nil
}

// HandleSubmit implements component.Component. A tripped honeypot or a
// missing required field drops the submission silently so automated
// submitters get no feedback. A dispatch failure surfaces as a single
// user-facing message; it is never raised as an error.
func (c *Contact) HandleSubmit(_ context.Context, scope *component.Scope) error {
	if scope == nil || scope.Params == nil {
		return nil
	}

	if trap, _ := scope.Params.Param(c.honeypot); strings.TrimSpace(trap) != "" {
		scope.Logger.Debug().Str("component", c.Type()).Msg("honeypot tripped, submission dropped")
		return nil
	}

	name, okName := requiredParam(scope.Params, FieldName)
	email, okEmail := requiredParam(scope.Params, FieldEmail)
	message, okMessage := requiredParam(scope.Params, FieldMessage)
	if !okName || !okEmail || !okMessage {
		scope.Logger.Debug().Str("component", c.Type()).Msg("incomplete submission dropped")
		return nil
	}

	if c.recipient == "" {
		scope.Errors.Append(scope.Translate("contact.error",
			"Your message could not be sent. Please try again later."))
		scope.Logger.Warn().Str("component", c.Type()).Msg("no recipient configured")
		return nil
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", name, email, message)
	if err := c.dispatcher.Send(c.recipient, email, body); err != nil {
		scope.Errors.Append(scope.Translate("contact.error",
			"Your message could not be sent. Please try again later."))
		scope.Logger.Warn().Err(err).Str("component", c.Type()).Msg("dispatch failed")
		return nil
	}

	scope.Errors.Append(scope.Translate("contact.success",
		"Thank you for your message."))
	return nil
}

func requiredParam(params render.Params, name string) (string, bool) {
	value, ok := params.Param(name)
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
