// Package strobe implements the STROBE protocol framework: a duplex-sponge
// state machine, built on the Keccak-f[1600] permutation, that unifies
// hashing, authenticated encryption, pseudorandom generation, key
// derivation, and message authentication behind a small algebra of tagged
// operations.
//
// A Strobe value is a strictly sequential state machine: no operation may
// run concurrently on the same instance, and there is no notion of
// cancellation. Branch a trial operation (most commonly a MAC check) by
// calling Clone first.
package strobe

import (
	"fmt"

	"github.com/dnsimmons/strobego/internal/keccak"
)

// SecParam is STROBE's security parameter, in bits. Only 128 and 256 are
// defined; the permutation itself is fixed at Keccak-f[1600].
type SecParam int

const (
	Sec128 SecParam = 128
	Sec256 SecParam = 256
)

// strobeVersion is the protocol version mixed into every initial state and
// reported by VersionString.
const strobeVersion = "1.0.2"

// role tracks whether a Strobe instance has latched onto the sender or
// receiver side of a transport-bearing exchange.
type role int8

const (
	roleUnset role = iota
	roleSender
	roleReceiver
)

func (r role) String() string {
	switch r {
	case roleSender:
		return "sender"
	case roleReceiver:
		return "receiver"
	default:
		return "unset"
	}
}

func roleFromString(s string) (role, error) {
	switch s {
	case "sender":
		return roleSender, nil
	case "receiver":
		return roleReceiver, nil
	case "unset", "":
		return roleUnset, nil
	default:
		return roleUnset, fmt.Errorf("strobe: unknown role %q", s)
	}
}

// Strobe is the duplex-sponge state machine. The zero value is not a valid
// Strobe; construct one with New. Strobe is a plain value type: assigning it
// or passing it by value copies the full 200-byte state, which is exactly
// what Clone does.
type Strobe struct {
	st       [keccak.Width]byte
	sec      SecParam
	rate     int
	pos      int
	posBegin int
	role     role
}

// New builds a Strobe keyed to the given protocol byte string and security
// parameter. The protocol string is mixed in as meta-AD, so two instances
// with different proto or sec start from disjoint states.
//
// Panics with ErrBadSecParam if sec is not Sec128/Sec256 or if the derived
// rate falls outside [1, 254) — both indicate a construction-time
// programmer error, not a runtime condition callers are expected to recover
// from.
func New(proto []byte, sec SecParam) Strobe {
	if sec != Sec128 && sec != Sec256 {
		panic(ErrBadSecParam)
	}

	rate := keccak.Width - int(sec)/4 - 2
	if rate < 1 || rate >= 254 {
		panic(ErrBadSecParam)
	}

	var s Strobe
	s.sec = sec
	s.rate = rate

	// st = F([0x01, R+2, 0x01, 0x00, 0x01, 0x60] || "STROBEv1.0.2"), the
	// rest of the 200-byte block left zero. R+2 and the fixed framing
	// prefix make instances with a different rate or protocol string start
	// from a disjoint state.
	s.st[0] = 0x01
	s.st[1] = byte(rate + 2)
	s.st[2] = 0x01
	s.st[3] = 0x00
	s.st[4] = 0x01
	s.st[5] = 0x60
	copy(s.st[6:], []byte("STROBEv"+strobeVersion))

	keccak.Permute(&s.st)

	s.MetaAD(proto, false)
	return s
}

// VersionString returns a diagnostic identifier of the form
// "Strobe-Keccak-{128,256}/1600-v1.0.2".
func (s *Strobe) VersionString() string {
	return fmt.Sprintf("Strobe-Keccak-%d/1600-v%s", int(s.sec), strobeVersion)
}

// Clone returns an independent deep copy of s. Because recv_MAC mutates
// state even on a failed check, the documented pattern for a tentative
// verification is to clone, try the MAC, and keep the clone only on
// success.
func (s Strobe) Clone() Strobe {
	return s
}

// Rate returns R, the number of bytes absorbed or squeezed per permutation
// call.
func (s *Strobe) Rate() int {
	return s.rate
}

// StateBytes returns a copy of the raw 200-byte permutation state, for
// harnesses that compare against known-answer state snapshots rather than
// driving further operations. Ordinary callers have no use for this; use the
// named operations instead.
func (s *Strobe) StateBytes() []byte {
	out := make([]byte, keccak.Width)
	copy(out, s.st[:])
	return out
}

// SecParam returns the security parameter this instance was constructed
// with.
func (s *Strobe) SecParam() SecParam {
	return s.sec
}
