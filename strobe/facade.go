package strobe

// This file is the operation façade: the ten named STROBE operations, each
// a thin, near-identical shell over operate with a fixed flag combination,
// plus their meta-variants (flag M OR'd in, used to domain-separate framing
// from payload within the same session). All data-bearing operations
// mutate their buffer in place; see the table below for what ends up in it.
//
//	Operation  Flags        Input semantics         Output semantics
//	AD         A            associated data         none
//	KEY        A,C          key bytes               overwritten; discard
//	PRF        I,A,C        length (zeroed here)     pseudorandom bytes
//	SendCLR    A,T          plaintext                none, sent as-is
//	RecvCLR    I,A,T        received plaintext       none
//	SendENC    A,C,T        plaintext                now holds ciphertext
//	RecvENC    I,A,C,T      ciphertext               now holds plaintext
//	SendMAC    C,T          length (zeroed here)     holds MAC tag
//	RecvMAC    I,C,T        candidate tag            zeroed iff valid
//	RATCHET    C            byte count               discard

// AD mixes associated data into the state. It produces no output.
func (s *Strobe) AD(data []byte, more bool) { s.operate(opAD, data, more) }

// MetaAD is AD, domain-separated as framing rather than payload.
func (s *Strobe) MetaAD(data []byte, more bool) { s.operate(opAD|FlagM, data, more) }

// KEY sets a symmetric cipher key. data is overwritten with unusable
// exchange output and should be discarded by the caller.
func (s *Strobe) KEY(data []byte, more bool) { s.operate(opKEY, data, more) }

// MetaKEY is KEY, domain-separated as framing rather than payload.
func (s *Strobe) MetaKEY(data []byte, more bool) { s.operate(opKEY|FlagM, data, more) }

// PRF extracts len(out) bytes of pseudorandom data as a function of the
// current state into out.
func (s *Strobe) PRF(out []byte, more bool) {
	zero(out)
	s.operate(opPRF, out, more)
}

// MetaPRF is PRF, domain-separated as framing rather than payload.
func (s *Strobe) MetaPRF(out []byte, more bool) {
	zero(out)
	s.operate(opPRF|FlagM, out, more)
}

// SendCLR sends a plaintext message: data is absorbed but not modified,
// since the bytes are transmitted to the peer unchanged.
func (s *Strobe) SendCLR(data []byte, more bool) { s.operate(opSendCLR, data, more) }

// MetaSendCLR is SendCLR, domain-separated as framing rather than payload.
func (s *Strobe) MetaSendCLR(data []byte, more bool) { s.operate(opSendCLR|FlagM, data, more) }

// RecvCLR receives a plaintext message: data is absorbed but not modified.
func (s *Strobe) RecvCLR(data []byte, more bool) { s.operate(opRecvCLR, data, more) }

// MetaRecvCLR is RecvCLR, domain-separated as framing rather than payload.
func (s *Strobe) MetaRecvCLR(data []byte, more bool) { s.operate(opRecvCLR|FlagM, data, more) }

// SendENC encrypts data in place: on return it holds the ciphertext.
func (s *Strobe) SendENC(data []byte, more bool) { s.operate(opSendENC, data, more) }

// MetaSendENC is SendENC, domain-separated as framing rather than payload.
func (s *Strobe) MetaSendENC(data []byte, more bool) { s.operate(opSendENC|FlagM, data, more) }

// RecvENC decrypts data in place: on return it holds the plaintext.
func (s *Strobe) RecvENC(data []byte, more bool) { s.operate(opRecvENC, data, more) }

// MetaRecvENC is RecvENC, domain-separated as framing rather than payload.
func (s *Strobe) MetaRecvENC(data []byte, more bool) { s.operate(opRecvENC|FlagM, data, more) }

// SendMAC computes a MAC of the current state into tag, which must already
// be sized to the desired tag length; its contents are discarded before
// use.
func (s *Strobe) SendMAC(tag []byte, more bool) {
	zero(tag)
	s.operate(opSendMAC, tag, more)
}

// MetaSendMAC is SendMAC, domain-separated as framing rather than payload.
func (s *Strobe) MetaSendMAC(tag []byte, more bool) {
	zero(tag)
	s.operate(opSendMAC|FlagM, tag, more)
}

// RecvMAC authenticates tag against the current state. tag is consumed (its
// contents are undefined afterward); the return value, not the buffer,
// tells the caller whether verification succeeded. On mismatch the state
// has still been mutated by the attempt — see Clone for how to guard
// against that.
func (s *Strobe) RecvMAC(tag []byte, more bool) error {
	return s.recvMAC(opRecvMAC, tag, more)
}

// MetaRecvMAC is RecvMAC, domain-separated as framing rather than payload.
func (s *Strobe) MetaRecvMAC(tag []byte, more bool) error {
	return s.recvMAC(opRecvMAC|FlagM, tag, more)
}

// Ratchet irreversibly destroys backward-recoverable state by zeroing n
// bytes of the rate region. The permutation output those bytes held is
// discarded; there is nothing for the caller to read.
func (s *Strobe) Ratchet(n int, more bool) {
	buf := make([]byte, n)
	s.operate(opRatchet, buf, more)
}

// MetaRatchet is Ratchet, domain-separated as framing rather than payload.
func (s *Strobe) MetaRatchet(n int, more bool) {
	buf := make([]byte, n)
	s.operate(opRatchet|FlagM, buf, more)
}
