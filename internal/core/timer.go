package core

import "time"

// FixedStep helps run updates at a steady cadence from inside a faster host
// loop. Each cadence of the simulation (input sampling, generation stepping)
// owns its own FixedStep.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedInterval constructs a FixedStep that fires once per interval. The
// first call to ShouldStep always fires.
func NewFixedInterval(d time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(d)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the period between ticks.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second / 60
	}
	f.step = d
}

// Interval returns the current period between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the caller should advance by one tick. At most
// one tick is reported per call; a backlog left by a stalled host loop is
// dropped rather than replayed.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
