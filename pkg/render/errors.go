package render

import (
	"html"
	"strings"
)

// MessagesHTML renders an error list as a markup snippet suitable for marker
// substitution. Messages vary per request and therefore must never be baked
// into cached bytes; components emit a marker and the engine resolves it
// through this helper on every serve. Returns "" for an empty list.
func MessagesHTML(messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	var out strings.Builder
	out.WriteString(`<ul class="pagegen-messages">`)
	for _, message := range messages {
		out.WriteString("<li>")
		out.WriteString(html.EscapeString(message))
		out.WriteString("</li>")
	}
	out.WriteString("</ul>")
	return out.String()
}

// ErrorList accumulates user-facing messages across one request's processing
// step. It is append-only within a request and read once by the view layer.
// A request is processed single-threaded, so no locking is required; create a
// fresh list per request.
type ErrorList struct {
	messages []string
}

// Append adds a message to the end of the list. Empty messages are dropped
// so templates never render blank entries.
func (l *ErrorList) Append(message string) {
	if l == nil || message == "" {
		return
	}
	l.messages = append(l.messages, message)
}

// Messages returns the accumulated messages in append order. The returned
// slice is a copy; mutating it does not affect the list.
func (l *ErrorList) Messages() []string {
	if l == nil || len(l.messages) == 0 {
		return nil
	}
	return append([]string(nil), l.messages...)
}

// Len reports the number of accumulated messages.
func (l *ErrorList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.messages)
}
