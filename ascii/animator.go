package ascii

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// LoadingPlaceholder is shown until a non-empty frame set arrives.
	LoadingPlaceholder = "Loading..."

	DefaultFPS = 8

	// RepeatFactor is how many times the frame set is laid end to end in scroll mode.
	RepeatFactor = 3
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances an Animator by one frame. The unexported tag lets an
// Animator ignore ticks scheduled before its last Configure or Stop.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Animator cycles through a fixed set of text frames on a timer.
type Animator struct {
	frames     []string
	fps        float64
	scrollMode bool
	index      int
	stopped    bool

	id  int
	tag int
}

type Option func(*Animator)

func WithFrames(frames []string) Option {
	return func(a *Animator) {
		a.frames = frames
	}
}

func WithFPS(fps float64) Option {
	return func(a *Animator) {
		a.fps = fps
	}
}

func WithScrollMode(enabled bool) Option {
	return func(a *Animator) {
		a.scrollMode = enabled
	}
}

func New(opts ...Option) Animator {
	a := Animator{
		fps: DefaultFPS,
		id:  nextID(),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Index is the position in the effective sequence.
func (a Animator) Index() int {
	return a.index
}

// Interval is the time between frames, rounded to the millisecond.
func (a Animator) Interval() time.Duration {
	fps := a.fps
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Duration(math.Round(1000/fps)) * time.Millisecond
}

// EffectiveLength is the number of steps in one full cycle: N, or N*RepeatFactor in scroll mode.
func (a Animator) EffectiveLength() int {
	if a.scrollMode {
		return len(a.frames) * RepeatFactor
	}
	return len(a.frames)
}

// Configure swaps the frame set and rate and restarts the timer. The index
// is kept; it wraps against the new length on the next tick.
func (a *Animator) Configure(frames []string, fps float64) tea.Cmd {
	a.frames = frames
	a.fps = fps
	a.stopped = false
	a.tag++
	return a.Tick()
}

// Stop cancels the running timer. Any tick already in flight is dropped by Update.
func (a *Animator) Stop() {
	a.stopped = true
	a.tag++
}

// Tick schedules the next frame. It returns nil when there is nothing to animate.
func (a Animator) Tick() tea.Cmd {
	if a.stopped || len(a.frames) == 0 {
		return nil
	}
	id, tag := a.id, a.tag
	return tea.Tick(a.Interval(), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}

func (a Animator) Update(msg tea.Msg) (Animator, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return a, nil
	}

	if tick.ID != a.id || tick.tag != a.tag || a.stopped {
		return a, nil
	}

	n := a.EffectiveLength()
	if n == 0 {
		return a, nil
	}

	a.index = (a.index + 1) % n
	a.tag++
	return a, a.Tick()
}

// View returns the frame for the current index, or LoadingPlaceholder.
func (a Animator) View() string {
	n := len(a.frames)
	if n == 0 {
		return LoadingPlaceholder
	}
	if a.scrollMode {
		// frames repeated RepeatFactor times: element i of the long sequence is frames[i mod n]
		return a.frames[(a.index%(n*RepeatFactor))%n]
	}
	return a.frames[a.index%n]
}
