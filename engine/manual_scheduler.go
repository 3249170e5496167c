package engine

import (
	"sync"
	"time"
)

// ManualScheduler is a deterministic Scheduler and TimeProvider for tests
// Time only moves when Advance is called
type ManualScheduler struct {
	mu    sync.Mutex
	epoch time.Time
	now   time.Duration
	tasks []*ManualTask
}

// ManualTask is a task armed on a ManualScheduler
type ManualTask struct {
	Interval time.Duration

	fn        func()
	next      time.Duration
	cancelled bool
	sched     *ManualScheduler
}

// NewManualScheduler creates a scheduler whose clock starts at epoch
func NewManualScheduler(epoch time.Time) *ManualScheduler {
	return &ManualScheduler{epoch: epoch}
}

// Every arms fn to run every interval of simulated time
func (m *ManualScheduler) Every(interval time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &ManualTask{
		Interval: interval,
		fn:       fn,
		next:     m.now + interval,
		sched:    m,
	}
	m.tasks = append(m.tasks, t)
	return t
}

// Cancel disarms the task
func (t *ManualTask) Cancel() {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	t.cancelled = true
}

// Cancelled reports whether Cancel was called
func (t *ManualTask) Cancelled() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	return t.cancelled
}

// Advance moves simulated time forward by d, firing due tasks in deadline order
// Callbacks run without the scheduler lock so they may arm or cancel tasks
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	for {
		var due *ManualTask
		for _, t := range m.tasks {
			if t.cancelled || t.next > target {
				continue
			}
			if due == nil || t.next < due.next {
				due = t
			}
		}
		if due == nil {
			break
		}
		m.now = due.next
		due.next += due.Interval
		fn := due.fn

		m.mu.Unlock()
		fn()
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
}

// Live returns the armed, not cancelled tasks
func (m *ManualScheduler) Live() []*ManualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	var live []*ManualTask
	for _, t := range m.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	return live
}

// LiveWithInterval returns armed tasks with the given interval
func (m *ManualScheduler) LiveWithInterval(interval time.Duration) []*ManualTask {
	var out []*ManualTask
	for _, t := range m.Live() {
		if t.Interval == interval {
			out = append(out, t)
		}
	}
	return out
}

// Now returns the simulated wall clock
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch.Add(m.now)
}

// Elapsed returns simulated time since epoch
func (m *ManualScheduler) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}
