package ecs

// System updates a world once per fixed tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs systems in registration order, one fixed tick at a time.
type Scheduler struct {
	systems []System
	ticks   uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, sys := range systems {
		if sys != nil {
			s.systems = append(s.systems, sys)
		}
	}
	return s
}

// Tick runs every system once and returns the events they raised, in
// the order they were pushed.
func (s *Scheduler) Tick(w *World) []Event {
	for _, sys := range s.systems {
		sys.Update(w)
	}
	s.ticks++
	return w.Events().Drain()
}

// Ticks is the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
