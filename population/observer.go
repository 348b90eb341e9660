package population

// Observer receives the population after every generation
// Update runs synchronously on the engine's goroutine and must not call back
// into the engine's mutating methods
type Observer interface {
	Update(s State)
}

// ObserverFunc adapts a plain function to Observer
type ObserverFunc func(s State)

// Update calls f(s)
func (f ObserverFunc) Update(s State) {
	f(s)
}

// ObserverID identifies a registration for removal
type ObserverID uint64

type registration struct {
	id       ObserverID
	observer Observer
}

// AddObserver registers o; observers are notified in registration order
// The engine does not own o; callers remove it before it becomes invalid
func (e *Engine) AddObserver(o Observer) ObserverID {
	e.nextID++
	e.observers = append(e.observers, registration{id: e.nextID, observer: o})
	return e.nextID
}

// RemoveObserver unregisters the observer with the given id
// Returns false if no such registration exists
func (e *Engine) RemoveObserver(id ObserverID) bool {
	for i, reg := range e.observers {
		if reg.id == id {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return true
		}
	}
	return false
}

// ObserverCount returns the number of registered observers
func (e *Engine) ObserverCount() int {
	return len(e.observers)
}

// notify publishes the current snapshot to every observer
func (e *Engine) notify() {
	snapshot := e.state
	for _, reg := range e.observers {
		reg.observer.Update(snapshot)
	}
}
