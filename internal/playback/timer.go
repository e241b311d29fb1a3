package playback

import "time"

// Timer turns the variable frame deltas of a render loop into fixed ticks.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewTimer returns ErrInterval unless interval is positive.
func NewTimer(interval time.Duration) (*Timer, error) {
	if interval <= 0 {
		return nil, ErrInterval
	}
	return &Timer{interval: interval}, nil
}

// Elapse adds dt and returns how many whole intervals completed.
func (t *Timer) Elapse(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.interval)
	t.elapsed -= time.Duration(n) * t.interval
	return n
}

// Progress is the fraction of the current interval that has passed.
func (t *Timer) Progress() float64 {
	return float64(t.elapsed) / float64(t.interval)
}

func (t *Timer) Remaining() time.Duration {
	return t.interval - t.elapsed
}
