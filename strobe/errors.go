package strobe

import "errors"

// Programmer errors: constructing a Strobe with a bad security parameter, or
// invoking an operation with the reserved K flag. Both panic at the point of
// misuse rather than returning an error, matching the assert! semantics of
// the reference implementation these bindings are ported from.
var (
	// ErrBadSecParam is the panic value when New is given a security
	// parameter other than Sec128/Sec256, or when the derived rate falls
	// outside [1, 254). UnmarshalStrobe returns it wrapped, rather than
	// panicking, for a snapshot whose sec is not Sec128/Sec256.
	ErrBadSecParam = errors.New("strobe: invalid security parameter or resulting rate out of bounds")

	// ErrReservedFlag is the panic value when an operation sets FlagK.
	ErrReservedFlag = errors.New("strobe: operation flag K is reserved and not implemented")
)

// ErrAuthenticationFailed is returned (never panicked) by RecvMAC/MetaRecvMAC
// when the candidate tag does not match the expected value. The state has
// already been mutated by the failed attempt; callers must treat the session
// as compromised. See Strobe.Clone for the "try, then keep-or-discard"
// pattern recommended when a mismatch is anticipated.
var ErrAuthenticationFailed = errors.New("strobe: MAC authentication failed")
