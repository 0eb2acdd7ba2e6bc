package inputguard

import "time"

// Clock supplies the current time to the scan budget accounting.
// Tests inject a fake clock to simulate slow matchers without real delay.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

var systemClock Clock = ClockFunc(time.Now)
