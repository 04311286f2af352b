package phase

import "sync"

type Phase string

const (
	Countdown Phase = "countdown"
	Checking  Phase = "checking"
	Pre       Phase = "pre"
	In        Phase = "in"
	Post      Phase = "post"
	Idle      Phase = "idle"
)

type Event string

const (
	// EventKickoffReached fires when the countdown to kickoff hits zero.
	EventKickoffReached Event = "kickoff_reached"
	// EventLiveIn / EventLivePost are reported by the poller.
	EventLiveIn   Event = "live_in"
	EventLivePost Event = "live_post"
	// EventNoMatch means the live endpoint explicitly reported no current
	// match. Kickoff time passed but the feed has not registered the match.
	EventNoMatch Event = "no_match"
	// EventTickFailed means one poll tick failed. The phase never changes
	// because of a failed tick.
	EventTickFailed Event = "tick_failed"
	// EventDwellElapsed fires after the fixed post-match dwell period.
	EventDwellElapsed Event = "dwell_elapsed"
)

// Machine drives the lifecycle of the currently displayed fixture:
// countdown -> pre -> in -> post -> countdown (next fixture). It starts in
// checking until a fixture is known.
type Machine struct {
	mu           sync.Mutex
	phase        Phase
	fixtureID    string
	kickoffFired bool
}

func NewMachine() *Machine {
	return &Machine{phase: Checking}
}

func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.phase
}

// SetFixture resets the machine for the given fixture. The kickoff latch is
// reset only when the fixture identity changes.
func (m *Machine) SetFixture(fixtureID string, kickoffKnown bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if fixtureID != m.fixtureID {
		m.fixtureID = fixtureID
		m.kickoffFired = false
	}

	if fixtureID == "" || !kickoffKnown {
		m.phase = Idle
		return
	}

	m.phase = Countdown
}

func (m *Machine) FixtureID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fixtureID
}

// Tick applies one event. It returns the resulting phase and whether the
// phase changed.
func (m *Machine) Tick(event Event) (Phase, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := m.phase

	switch m.phase {
	case Countdown:
		// The countdown->pre transition fires exactly once per fixture.
		if event == EventKickoffReached && !m.kickoffFired {
			m.kickoffFired = true
			m.phase = Pre
		}
	case Pre:
		switch event {
		case EventLiveIn:
			m.phase = In
		case EventLivePost:
			m.phase = Post
		}
	case In:
		if event == EventLivePost {
			m.phase = Post
		}
	case Post:
		if event == EventDwellElapsed {
			m.phase = Countdown
		}
	}

	return m.phase, m.phase != before
}
