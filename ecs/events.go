package ecs

// EventKind identifies gameplay events raised during a tick.
type EventKind string

const (
	EventCoinCollected  EventKind = "coin_collected"
	EventPlayerHit      EventKind = "player_hit"
	EventEnemyHit       EventKind = "enemy_hit"
	EventEnemyKilled    EventKind = "enemy_killed"
	EventBulletFired    EventKind = "bullet_fired"
	EventBlockerOpened  EventKind = "blocker_opened"
	EventWrongAnswer    EventKind = "wrong_answer"
	EventLevelCompleted EventKind = "level_completed"
	EventPlayerDied     EventKind = "player_died"
)

// Event is a gameplay event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Value  int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
