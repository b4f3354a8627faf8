package service

import "time"

// Clock supplies "today". Services never read the wall clock directly.
type Clock func() time.Time

func SystemClock() time.Time { return time.Now().UTC() }

func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
