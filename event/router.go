package event

// Handler receives routed events of the types it declares
type Handler[T any] interface {
	HandleEvent(ctx T, ev Event)
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for a fixed set of types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, ev Event)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, ev Event) { h.Fn(ctx, ev) }
func (h HandlerFunc[T]) EventTypes() []EventType     { return h.Types }

// Router drains a queue once per frame on the simulation goroutine
// Per type, handlers run in registration order; observers run after them and see every event
type Router[T any] struct {
	queue     *Queue
	byType    map[EventType][]Handler[T]
	observers []func(T, Event)
	buf       []Event
}

func NewRouter[T any](queue *Queue) *Router[T] {
	return &Router[T]{
		queue:  queue,
		byType: make(map[EventType][]Handler[T]),
	}
}

func (r *Router[T]) Register(h Handler[T]) {
	for _, t := range h.EventTypes() {
		r.byType[t] = append(r.byType[t], h)
	}
}

// Observe adds a callback for every dispatched event, used for debug tracing
func (r *Router[T]) Observe(fn func(T, Event)) {
	r.observers = append(r.observers, fn)
}

// Routes reports how many handlers take t
func (r *Router[T]) Routes(t EventType) int {
	return len(r.byType[t])
}

// DispatchAll routes everything queued so far and returns the count
func (r *Router[T]) DispatchAll(ctx T) int {
	r.buf = r.queue.ConsumeInto(r.buf[:0], 0)
	for i := range r.buf {
		r.Dispatch(ctx, r.buf[i])
	}
	n := len(r.buf)
	clear(r.buf)
	return n
}

// Dispatch routes a single event without going through the queue
func (r *Router[T]) Dispatch(ctx T, ev Event) {
	for _, h := range r.byType[ev.Type] {
		h.HandleEvent(ctx, ev)
	}
	for _, fn := range r.observers {
		fn(ctx, ev)
	}
}
