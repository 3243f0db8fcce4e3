package namer

import "time"

// Clock supplies the instant used for date/time name parts and log
// timestamps. Injected so resolution can be tested at a fixed wall-clock
// time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
