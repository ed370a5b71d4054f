package search

// EventKind tags an Event.
type EventKind int

const (
	// EventSeeded follows the creation of a root (FirstStep or a DFSID restart).
	EventSeeded EventKind = iota
	// EventSelected follows a fringe pop.
	EventSelected
	// EventExpanded follows the insertion of a node's children.
	EventExpanded
	// EventRestarted follows a DFSID ceiling increase.
	EventRestarted
	// EventFinished follows any terminal outcome.
	EventFinished
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventSeeded:
		return "seeded"
	case EventSelected:
		return "selected"
	case EventExpanded:
		return "expanded"
	case EventRestarted:
		return "restarted"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event describes one engine transition.
type Event struct {
	Kind      EventKind
	RunID     string
	Algorithm Algorithm
	Iteration int

	// TreeNodeID and GraphNodeID name the node seeded, popped or expanded.
	TreeNodeID  string
	GraphNodeID string
	Depth       int

	// Children is the number of nodes added by an expansion.
	Children int

	FringeLen int
	TreeLen   int

	// Result is set on EventFinished.
	Result Result
}

// Observer receives engine events synchronously. Observers must not call
// back into the engine.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnEvent implements Observer.
func (f ObserverFunc) OnEvent(e Event) { f(e) }
