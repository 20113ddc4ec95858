package core

// EventKind identifies what happened in an input or timer event.
type EventKind int

const (
	EventNone        EventKind = iota
	EventQuit                  // Window close, Q, Ctrl+C
	EventKeyDown               // A key was pressed
	EventPointerDown           // Mouse button / touch pressed at (X, Y) in world pixels
	EventTimerFired            // A periodic timer elapsed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventPointerDown:
		return "PointerDown"
	case EventTimerFired:
		return "TimerFired"
	default:
		return "Unknown"
	}
}

// Key is a platform-neutral key identifier.
// Hosts translate their own key codes; anything unmapped becomes KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyUp
	KeyEnter
	KeyEscape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// TimerID names a periodic timer registered with a Scheduler.
type TimerID int

// Event is one entry of the per-tick input queue.
// Only the fields relevant to Kind are meaningful.
type Event struct {
	Kind  EventKind
	Key   Key
	X, Y  int
	Timer TimerID
}

// QuitEvent builds a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDownEvent builds a key press.
func KeyDownEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// PointerDownEvent builds a pointer press at world position (x, y).
func PointerDownEvent(x, y int) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y}
}

// TimerFiredEvent builds a timer notification.
func TimerFiredEvent(id TimerID) Event {
	return Event{Kind: EventTimerFired, Timer: id}
}

// EventQueue collects events between ticks and hands them out in arrival order.
// It is not safe for concurrent use; the host loop is its only writer.
type EventQueue struct {
	events  []Event
	pressed map[Key]bool
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events:  make([]Event, 0, 8),
		pressed: make(map[Key]bool),
	}
}

// Push appends an event. Key presses are also remembered in the pressed set.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
	if ev.Kind == EventKeyDown {
		q.pressed[ev.Key] = true
	}
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in order and empties the queue,
// including the pressed-key set.
func (q *EventQueue) Drain() []Event {
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	clear(q.pressed)
	return out
}

// Pressed reports whether k was pressed since the last Drain.
// Terminals deliver no key-release events, so this is the polling view the
// host can offer.
func (q *EventQueue) Pressed(k Key) bool {
	return q.pressed[k]
}

// PressedKeys returns a copy of the pressed-key set.
func (q *EventQueue) PressedKeys() map[Key]bool {
	keys := make(map[Key]bool, len(q.pressed))
	for k, v := range q.pressed {
		keys[k] = v
	}
	return keys
}
