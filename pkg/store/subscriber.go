package store

// Subscriber observes committed state changes. It is a capability interface
// rather than a raw closure so hosts can hand the Store any value with an
// OnState method; SubscriberFunc adapts plain functions.
type Subscriber[S any] interface {
	// OnState receives the new state after each successful transition.
	// The value is read-only.
	OnState(state S)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc[S any] func(S)

// OnState implements Subscriber.
func (f SubscriberFunc[S]) OnState(state S) {
	f(state)
}

// Token identifies a registration for later removal.
type Token int

type subscription[S any] struct {
	token      Token
	subscriber Subscriber[S]
}

// Subscribe registers a subscriber. Subscribers are notified after each
// dispatch in registration order, exactly once per dispatch.
func (s *Store[S, A]) Subscribe(sub Subscriber[S]) Token {
	token := s.nextToken
	s.nextToken++
	s.subscribers = append(s.subscribers, subscription[S]{token: token, subscriber: sub})
	return token
}

// SubscribeFunc registers a plain function as a subscriber.
func (s *Store[S, A]) SubscribeFunc(fn func(S)) Token {
	return s.Subscribe(SubscriberFunc[S](fn))
}

// Unsubscribe removes a registration, preserving the order of the rest.
// It reports whether the token was known.
func (s *Store[S, A]) Unsubscribe(token Token) bool {
	for i, sub := range s.subscribers {
		if sub.token == token {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

// SubscriberCount returns the number of active registrations.
func (s *Store[S, A]) SubscriberCount() int {
	return len(s.subscribers)
}
