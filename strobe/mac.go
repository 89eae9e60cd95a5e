package strobe

import "crypto/subtle"

// recvMAC runs the recv_MAC duplex step, then checks whether the resulting
// buffer is all-zero: after operate's seqBefore combine, tag holds
// expected_tag XOR candidate_tag, which is all-zero exactly when the
// candidate matched. The comparison is constant-time and does not
// short-circuit on the first differing byte, since doing so would leak
// timing information about how many leading bytes of a forged tag happened
// to match.
//
// crypto/subtle has no dedicated "all bytes are zero" test, so the check
// compares tag against an all-zero slice of the same length with
// subtle.ConstantTimeCompare, which accumulates every byte difference before
// deciding.
func (s *Strobe) recvMAC(flags OpFlags, tag []byte, more bool) error {
	s.operate(flags, tag, more)

	zero := make([]byte, len(tag))
	if subtle.ConstantTimeCompare(tag, zero) == 1 {
		return nil
	}
	return ErrAuthenticationFailed
}
