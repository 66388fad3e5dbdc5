package tin

// EventKind identifies an input event.
type EventKind uint8

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseMoved
	EventMouseDown
	EventMouseUp
	EventRightMouseDown
	EventRightMouseUp
	EventOtherMouseDown
	EventOtherMouseUp
)

var eventKindNames = [...]string{
	EventKeyDown:        "KeyDown",
	EventKeyUp:          "KeyUp",
	EventMouseMoved:     "MouseMoved",
	EventMouseDown:      "MouseDown",
	EventMouseUp:        "MouseUp",
	EventRightMouseDown: "RightMouseDown",
	EventRightMouseUp:   "RightMouseUp",
	EventOtherMouseDown: "OtherMouseDown",
	EventOtherMouseUp:   "OtherMouseUp",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "Unknown"
}

// IsMouse reports whether k is a mouse event.
func (k EventKind) IsMouse() bool {
	return k >= EventMouseMoved && k <= EventOtherMouseUp
}

// Event is an input event delivered to Scene.OnEvent. Point is set for
// mouse events, Key for key events.
type Event struct {
	Kind  EventKind
	Point Point
	Key   Key
}

// KeyEvent returns a key event.
func KeyEvent(kind EventKind, key Key) Event {
	return Event{Kind: kind, Key: key}
}

// MouseEvent returns a mouse event at p.
func MouseEvent(kind EventKind, p Point) Event {
	return Event{Kind: kind, Point: p}
}
