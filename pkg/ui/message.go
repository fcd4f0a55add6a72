package ui

import (
	"fmt"
	"reflect"
	"sync"
)

// Direction tells whether a message asks a widget to change (ToWidget) or
// reports that it changed (FromWidget).
type Direction int

const (
	ToWidget Direction = iota
	FromWidget
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == ToWidget {
		return FromWidget
	}
	return ToWidget
}

func (d Direction) String() string {
	if d == ToWidget {
		return "to"
	}
	return "from"
}

// Message is the unit of communication between widgets and the
// application. The payload is immutable once sent; only the handled flag
// changes while the message is routed.
type Message struct {
	// Data is the payload, usually one of the Widget* types or a control's
	// own message type.
	Data any
	// Destination is the node the message is about.
	Destination Handle
	// Direction distinguishes requests from notifications.
	Direction Direction
	// PerformLayout forces a layout pass before the message is routed.
	PerformLayout bool
	// Flags is opaque to the core. Applications use it to tag messages
	// they sent themselves.
	Flags uint64

	handled bool
}

// NewMessage builds a message.
func NewMessage(dest Handle, dir Direction, data any) *Message {
	return &Message{Data: data, Destination: dest, Direction: dir}
}

// To builds a ToWidget message.
func To(dest Handle, data any) *Message {
	return NewMessage(dest, ToWidget, data)
}

// From builds a FromWidget message.
func From(dest Handle, data any) *Message {
	return NewMessage(dest, FromWidget, data)
}

// Handled reports whether some handler consumed the message. Consumption
// stops default processing by later handlers that check it; it never stops
// routing.
func (m *Message) Handled() bool { return m.handled }

// SetHandled sets the handled flag.
func (m *Message) SetHandled(handled bool) { m.handled = handled }

// Reverse returns a copy with the opposite direction and the handled flag
// cleared. Widgets use it to announce a change they just applied.
func (m *Message) Reverse() *Message {
	return &Message{
		Data:          m.Data,
		Destination:   m.Destination,
		Direction:     m.Direction.Reverse(),
		PerformLayout: m.PerformLayout,
		Flags:         m.Flags,
	}
}

// WithLayout sets PerformLayout and returns m.
func (m *Message) WithLayout() *Message {
	m.PerformLayout = true
	return m
}

// WithFlags sets Flags and returns m.
func (m *Message) WithFlags(flags uint64) *Message {
	m.Flags = flags
	return m
}

// Equal reports whether two messages carry the same payload to the same
// destination in the same direction. Routing state is ignored.
func (m *Message) Equal(o *Message) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Destination == o.Destination &&
		m.Direction == o.Direction &&
		m.Flags == o.Flags &&
		reflect.DeepEqual(m.Data, o.Data)
}

func (m *Message) String() string {
	return fmt.Sprintf("%T%+v %s %v", m.Data, m.Data, m.Direction, m.Destination)
}

// DataAs returns the payload as a T.
func DataAs[T any](m *Message) (T, bool) {
	t, ok := m.Data.(T)
	return t, ok
}

// queue is a FIFO of pending messages. Senders may live on other
// goroutines; the drain always happens on the UI goroutine.
type queue struct {
	mu    sync.Mutex
	items []*Message
	head  int
}

func (q *queue) push(m *Message) {
	q.mu.Lock()
	q.items = append(q.items, m)
	q.mu.Unlock()
}

func (q *queue) pop() (*Message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.head >= len(q.items) {
		return nil, false
	}
	m := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 64 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return m, true
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Sender enqueues messages for a UserInterface. It is cheap to copy and
// safe to use from any goroutine; messages are processed on the next drain.
type Sender struct {
	q *queue
}

// Send appends m to the queue. Nil messages are ignored.
func (s Sender) Send(m *Message) {
	if s.q == nil || m == nil {
		return
	}
	s.q.push(m)
}

// SendTo is shorthand for Send(To(dest, data)).
func (s Sender) SendTo(dest Handle, data any) {
	s.Send(To(dest, data))
}

// SendFrom is shorthand for Send(From(dest, data)).
func (s Sender) SendFrom(dest Handle, data any) {
	s.Send(From(dest, data))
}
