package event

// Observer receives published game events synchronously on the update goroutine
// Implementations must not block; hand work off if it is slow (audio, network)
type Observer interface {
	OnEvent(ev GameEvent)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(ev GameEvent)

func (f ObserverFunc) OnEvent(ev GameEvent) { f(ev) }

type subscription struct {
	types    map[EventType]struct{} // nil = all types
	observer Observer
}

// Router dispatches published events to observers in subscription order
// Not safe for concurrent use; owned by the update loop like the game it serves
type Router struct {
	subs []subscription
}

func NewRouter() *Router {
	return &Router{}
}

// Subscribe registers obs for the given types, or for every type when none are given
func (r *Router) Subscribe(obs Observer, types ...EventType) {
	var set map[EventType]struct{}
	if len(types) > 0 {
		set = make(map[EventType]struct{}, len(types))
		for _, t := range types {
			set[t] = struct{}{}
		}
	}
	r.subs = append(r.subs, subscription{types: set, observer: obs})
}

// Publish delivers ev to each matching observer before returning
func (r *Router) Publish(ev GameEvent) {
	for _, s := range r.subs {
		if s.types != nil {
			if _, ok := s.types[ev.Type]; !ok {
				continue
			}
		}
		s.observer.OnEvent(ev)
	}
}
