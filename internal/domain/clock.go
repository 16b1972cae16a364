package domain

import "github.com/jonboulle/clockwork"

// clock stamps ProcessedAt on resolved entrances.
var clock = clockwork.NewRealClock()

// SetClock replaces the processing time source, typically with a fake clock in
// tests or fixture generation. Pass nil to restore the real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
