package strobe

// combineSeq selects how a duplex step combines an input byte with the
// state byte at the current position. The three cases correspond exactly to
// the three non-degenerate rows of the operation table in facade.go: a
// plain operation never combines (seqNever), an outbound cipher-bearing
// operation sets state-then-output (seqAfter), and every other
// cipher-bearing operation (inbound decrypt, MAC verify, key, ratchet)
// combines state-then-input (seqBefore). PRF's "squeeze" and RATCHET's
// "overwrite" behaviors both fall out of seqBefore applied to an all-zero
// input buffer — there is no separate squeeze mode.
type combineSeq int

const (
	seqNever combineSeq = iota
	seqBefore
	seqAfter
)

func combineSeqFor(flags OpFlags) combineSeq {
	switch {
	case flags&FlagC != 0 && flags&FlagT != 0 && flags&FlagI == 0:
		return seqAfter
	case flags&FlagC != 0:
		return seqBefore
	default:
		return seqNever
	}
}

// duplex walks data byte-by-byte through the state's rate region, combining
// each byte with the state according to seq, and triggers the permutation
// whenever the rate boundary is crossed. If forceF is set and the duplex
// step did not already land exactly on the boundary, the permutation runs
// once more — this is how begin_op forces cipher-bearing operations to
// start on a fresh permutation boundary.
func (s *Strobe) duplex(data []byte, seq combineSeq, forceF bool) {
	for i := range data {
		switch seq {
		case seqBefore:
			data[i] ^= s.st[s.pos]
			s.st[s.pos] ^= data[i]
		case seqAfter:
			s.st[s.pos] ^= data[i]
			data[i] = s.st[s.pos]
		default:
			s.st[s.pos] ^= data[i]
		}

		s.pos++
		if s.pos == s.rate {
			s.runF()
		}
	}

	if forceF && s.pos != 0 {
		s.runF()
	}
}

// beginOp mixes the two-byte operation header (the previous operation's
// pos_begin, and this operation's flags) into the state ahead of its data.
// For transport-bearing operations it also latches (on first use) or
// checks (on every subsequent use) this instance's sender/receiver role, so
// that two Strobe objects on opposite ends of a session agree on the same
// mixed flags byte regardless of which one declared "send" and which
// declared "recv".
func (s *Strobe) beginOp(flags OpFlags) {
	if flags&FlagT != 0 {
		isOpReceiving := flags&FlagI != 0
		if s.role == roleUnset {
			if isOpReceiving {
				s.role = roleReceiver
			} else {
				s.role = roleSender
			}
		}
		if s.role == roleReceiver {
			flags ^= FlagI
		}
	}

	oldPosBegin := s.posBegin
	s.posBegin = s.pos + 1

	toMix := [2]byte{byte(oldPosBegin), byte(flags)}
	forceF := flags&FlagC != 0 || flags&FlagK != 0
	s.duplex(toMix[:], seqNever, forceF)
}

// operate is the shared entry point every named operation funnels through.
// When more is false it starts a new operation (begin_op); when more is
// true it continues streaming the previous one at the current position,
// under the same flags. Flag K is always rejected: it is reserved and not
// implemented by this framework.
func (s *Strobe) operate(flags OpFlags, data []byte, more bool) {
	if flags&FlagK != 0 {
		panic(ErrReservedFlag)
	}

	if !more {
		s.beginOp(flags)
	}

	s.duplex(data, combineSeqFor(flags), false)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Operate is the raw, flag-parameterized entry point the named operations in
// facade.go are built from. It exists as an escape hatch for harnesses that
// replay operation traces recorded by flag combination rather than by name
// (see strobe/kat), and is not the recommended way to drive a session —
// prefer AD/KEY/SendENC/etc. data is mutated in place and also returned for
// convenience; if flags select recv_MAC semantics (I|C|T, no A), the
// returned error reports authentication failure instead of panicking or
// silently succeeding.
func (s *Strobe) Operate(flags OpFlags, data []byte, more bool) ([]byte, error) {
	const recvMACFlags = FlagI | FlagC | FlagT
	if flags&(FlagI|FlagA|FlagC|FlagT) == recvMACFlags {
		return data, s.recvMAC(flags, data, more)
	}
	s.operate(flags, data, more)
	return data, nil
}
