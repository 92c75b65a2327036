// ABOUTME: Fire-and-forget analytics event reporting.
// ABOUTME: Events carry a name plus string params; failures are logged, never propagated.
package analytics

import "log/slog"

// Screen identifies the screen an event happened on.
type Screen string

const (
	ScreenMain       Screen = "Main"
	ScreenStatistics Screen = "Statistics"
)

// Item identifies the element a click event targeted.
type Item string

const (
	ItemAddTrack Item = "add_track"
	ItemTrack    Item = "track"
	ItemFilter   Item = "filter"
	ItemEdit     Item = "edit"
	ItemDelete   Item = "delete"
)

// Event is one reportable analytics event.
type Event struct {
	Name   string
	Params map[string]string
}

// Open reports that a screen was opened.
func Open(screen Screen) Event {
	return Event{Name: "open", Params: map[string]string{"screen": string(screen)}}
}

// Close reports that a screen was closed.
func Close(screen Screen) Event {
	return Event{Name: "close", Params: map[string]string{"screen": string(screen)}}
}

// Click reports a tap on an item within a screen.
func Click(screen Screen, item Item) Event {
	return Event{
		Name:   "click",
		Params: map[string]string{"screen": string(screen), "item": string(item)},
	}
}

// Reporter delivers events to an analytics sink. Implementations must never
// block or fail the caller.
type Reporter interface {
	Report(event string, params map[string]string)
}

// LogReporter writes events to the structured log. It stands in for a real
// analytics backend.
type LogReporter struct {
	log *slog.Logger
}

// NewLogReporter builds a reporter over the given logger.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{log: logger.With("component", "analytics")}
}

// Report logs the event.
func (r *LogReporter) Report(event string, params map[string]string) {
	args := make([]any, 0, len(params)*2)
	for k, v := range params {
		args = append(args, k, v)
	}
	r.log.Info(event, args...)
}

// Send is a convenience for reporting an Event through a Reporter. A nil
// reporter drops the event.
func Send(r Reporter, e Event) {
	if r == nil {
		return
	}
	r.Report(e.Name, e.Params)
}
