package strobe

import "github.com/dnsimmons/strobego/internal/keccak"

// runF applies the STROBE-specific domain-separated padding to the 200-byte
// state and then the Keccak-f[1600] permutation, resetting the duplex
// cursor. This is STROBE's cSHAKE-like padding fused with ratcheting
// position bookkeeping: unlike a plain sponge, the padding bytes depend on
// where the *previous* operation began (pos_begin), not just on the current
// position.
func (s *Strobe) runF() {
	s.st[s.pos] ^= byte(s.posBegin)
	s.st[s.pos+1] ^= 0x04
	s.st[s.rate+1] ^= 0x80

	keccak.Permute(&s.st)

	s.pos = 0
	s.posBegin = 0
}
