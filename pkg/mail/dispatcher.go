// Package mail defines the outbound message seam the composition layer
// dispatches through. Delivery transports live outside this module; the
// built-in dispatcher only logs, which is enough for development and tests.
package mail

import "github.com/rs/zerolog"

// Dispatcher delivers a message fire-and-forget. Implementations own retry
// and failure policy; an error return is surfaced to the user as a single
// ErrorList entry by the submitting component.
type Dispatcher interface {
	Send(to, from, body string) error
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(to, from, body string) error

// Send implements Dispatcher.
func (f DispatcherFunc) Send(to, from, body string) error {
	if f == nil {
		return nil
	}
	return f(to, from, body)
}

// LogDispatcher writes messages to a structured log instead of delivering
// them.
type LogDispatcher struct {
	log zerolog.Logger
}

// NewLogDispatcher constructs a LogDispatcher over log.
func NewLogDispatcher(log zerolog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

// Send implements Dispatcher.
func (d *LogDispatcher) Send(to, from, body string) error {
	if d == nil {
		return nil
	}
	d.log.Info().
		Str("to", to).
		Str("from", from).
		Int("bytes", len(body)).
		Msg("mail dispatched")
	return nil
}
