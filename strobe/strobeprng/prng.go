// Package strobeprng adapts a keyed Strobe instance into a standard
// io.Reader, so it can stand in anywhere a Go program expects a source of
// pseudorandom bytes (an envelope encryption nonce, a test fixture, a
// simulation seed) once it has already been keyed.
package strobeprng

import "github.com/dnsimmons/strobego/strobe"

// Rng produces pseudorandom output by repeatedly invoking PRF against an
// owned clone of a keyed Strobe. It does not mutate the Strobe it was built
// from; each Rng advances only its own copy of the state, so one keyed
// Strobe can seed any number of independent Rng readers.
type Rng struct {
	s       strobe.Strobe
	started bool
}

// New returns an Rng that draws pseudorandom output from s. Callers
// typically call Strobe.KEY on s before handing it here; New itself does
// not key anything.
func New(s strobe.Strobe) *Rng {
	return &Rng{s: s.Clone()}
}

// Read fills p entirely with PRF output and never errors, satisfying
// io.Reader. The first call begins a PRF operation; every subsequent call
// continues it with more=true, so splitting one logical read into several
// Read calls produces the same squeezed bytes as a single larger read would.
func (r *Rng) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.s.PRF(p, r.started)
	r.started = true
	return len(p), nil
}
