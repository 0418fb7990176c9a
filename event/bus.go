package event

import "github.com/Danjb1/hovership/core"

// Handler receives a dispatched event
// Handlers run synchronously inside the tick and must not mutate vehicle state
type Handler func(ev GameEvent)

// SubscriptionID identifies a subscription for Unsubscribe
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Bus dispatches events to subscribers
//
// Architecture:
//   - Single-threaded dispatch, not safe for concurrent use
//   - Subscribers are invoked in subscription order
//   - Publishing from inside a handler queues the event, delivered FIFO once
//     the current event has reached every subscriber
type Bus struct {
	subs     map[EventType][]subscription
	nextID   SubscriptionID
	pending  []GameEvent
	draining bool
}

func NewBus() *Bus {
	return &Bus{subs: make(map[EventType][]subscription)}
}

// Subscribe adds a handler for one event type
func (b *Bus) Subscribe(t EventType, h Handler) SubscriptionID {
	b.nextID++
	b.subs[t] = append(b.subs[t], subscription{id: b.nextID, handler: h})
	return b.nextID
}

// Unsubscribe removes a subscription, unknown ids are ignored
func (b *Bus) Unsubscribe(id SubscriptionID) {
	for t, list := range b.subs {
		for i, s := range list {
			if s.id != id {
				continue
			}
			// Fresh slice, an in-flight dispatch keeps iterating the old one
			next := make([]subscription, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			b.subs[t] = next
			return
		}
	}
}

// Publish delivers ev to every subscriber of its type
func (b *Bus) Publish(ev GameEvent) {
	b.pending = append(b.pending, ev)
	if b.draining {
		return
	}

	b.draining = true
	defer func() {
		b.draining = false
		b.pending = b.pending[:0]
	}()

	for i := 0; i < len(b.pending); i++ {
		next := b.pending[i]
		for _, s := range b.subs[next.Type] {
			s.handler(next)
		}
	}
}

// HandlerCount returns the number of subscribers for the given type
func (b *Bus) HandlerCount(t EventType) int {
	return len(b.subs[t])
}

// --- Typed subscription points ---

func (b *Bus) OnLanded(fn func(height float64)) SubscriptionID {
	return b.Subscribe(EventLanded, func(ev GameEvent) {
		if p, ok := ev.Payload.(*LandedPayload); ok {
			fn(p.Height)
		}
	})
}

func (b *Bus) OnTeleported(fn func(pose core.Pose)) SubscriptionID {
	return b.Subscribe(EventTeleported, func(ev GameEvent) {
		if p, ok := ev.Payload.(*TeleportedPayload); ok {
			fn(p.Pose)
		}
	})
}

func (b *Bus) OnStateChanged(fn func(prev, cur core.GameMode)) SubscriptionID {
	return b.Subscribe(EventStateChanged, func(ev GameEvent) {
		if p, ok := ev.Payload.(*StateChangedPayload); ok {
			fn(p.Previous, p.Current)
		}
	})
}

func (b *Bus) OnShardCollected(fn func(p ShardCollectedPayload)) SubscriptionID {
	return b.Subscribe(EventShardCollected, func(ev GameEvent) {
		if p, ok := ev.Payload.(*ShardCollectedPayload); ok {
			fn(*p)
		}
	})
}

func (b *Bus) OnLevelComplete(fn func(p LevelCompletePayload)) SubscriptionID {
	return b.Subscribe(EventLevelComplete, func(ev GameEvent) {
		if p, ok := ev.Payload.(*LevelCompletePayload); ok {
			fn(*p)
		}
	})
}
