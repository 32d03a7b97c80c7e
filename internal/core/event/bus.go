package event

import (
	"reflect"
	"sync"
)

// queued is one emitted event tagged with the type it was emitted as.
type queued struct {
	t  reflect.Type
	ev any
}

// Bus is a double-buffered event bus. Events emitted during a tick are held
// in the back buffer and delivered together by Flush, after the tick has
// finished mutating state, so observers never see a half-applied tick.
// Delivery follows emission order across all event types.
type Bus struct {
	mu       sync.Mutex // only protects handler registration
	front    []queued
	back     []queued
	handlers map[reflect.Type][]any
}

func NewBus() *Bus {
	return &Bus{
		front:    make([]queued, 0, 32),
		back:     make([]queued, 0, 32),
		handlers: make(map[reflect.Type][]any),
	}
}

// Emit queues an event into the back buffer.
func Emit[T any](b *Bus, event T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.back = append(b.back, queued{t: t, ev: event})
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], fn)
}

// SwapBuffers rotates back→front and clears the new back buffer.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front[:0]
}

// DispatchAll delivers all front-buffer events to their subscribed handlers
// in the order they were emitted.
func (b *Bus) DispatchAll() {
	for i, q := range b.front {
		for _, h := range b.handlers[q.t] {
			callHandler(h, q.ev)
		}
		b.front[i] = queued{}
	}
	b.front = b.front[:0]
}

// Flush delivers everything emitted since the previous flush.
func (b *Bus) Flush() {
	b.SwapBuffers()
	b.DispatchAll()
}

// Pending reports how many events wait in the back buffer.
func (b *Bus) Pending() int {
	return len(b.back)
}

func callHandler(handler any, event any) {
	// Subscribe and Emit key on the same type, so the call is well typed.
	reflect.ValueOf(handler).Call([]reflect.Value{reflect.ValueOf(event)})
}
