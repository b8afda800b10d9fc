package staging

import "time"

type Option func(*Area)

// Clock overrides the time source used for the date directory and the
// filename timestamp.
func Clock(now func() time.Time) Option {
	return func(a *Area) {
		a.now = now
	}
}
