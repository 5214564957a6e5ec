package codesearch

// EventKind identifies a diagnostic event emitted during resolution.
type EventKind string

// EventKind constants.
const (
	EventResolveStart EventKind = "resolve.start"
	EventProjectDir   EventKind = "resolve.project_dir"
	EventIndexFile    EventKind = "resolve.index_file"
	EventExclude      EventKind = "resolve.exclude"
	EventFolder       EventKind = "resolve.folder"
)

// Event is a diagnostic event. Path holds the path the event is about:
// the project file for EventResolveStart, the resolved path otherwise.
type Event struct {
	Kind        EventKind
	ProjectFile string
	Path        string
}

// Observer receives diagnostic events. Implementations must not block.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(e Event)

func (f ObserverFunc) Observe(e Event) { f(e) }
