package engine

// EventWithArg is a multicast event carrying one argument. Listeners run in
// registration order.
type EventWithArg[T any] struct {
	listeners []func(T)
}

// AddListener adds a callback. nil callbacks are ignored.
func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
