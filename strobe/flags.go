package strobe

// OpFlags is the four-bit (plus two control bits) flag combination that
// selects an operation's behavior in the duplex construction. See the
// operation table in facade.go for the flag combination each named
// operation uses.
type OpFlags uint8

const (
	// FlagI marks data moving inbound (the "I" for "inbound" semantics).
	FlagI OpFlags = 1 << 0
	// FlagA marks data delivered to the application.
	FlagA OpFlags = 1 << 1
	// FlagC marks an operation that uses cipher (permutation) output.
	FlagC OpFlags = 1 << 2
	// FlagT marks data sent for transport, i.e. to the remote party.
	FlagT OpFlags = 1 << 3
	// FlagM marks a meta-operation, used to domain-separate framing bytes
	// from payload bytes within the same session.
	FlagM OpFlags = 1 << 4
	// FlagK is reserved. Using it on any operation is a programmer error.
	FlagK OpFlags = 1 << 5
)

const (
	opAD      = FlagA
	opKEY     = FlagA | FlagC
	opPRF     = FlagI | FlagA | FlagC
	opSendCLR = FlagA | FlagT
	opRecvCLR = FlagI | FlagA | FlagT
	opSendENC = FlagA | FlagC | FlagT
	opRecvENC = FlagI | FlagA | FlagC | FlagT
	opSendMAC = FlagC | FlagT
	opRecvMAC = FlagI | FlagC | FlagT
	opRatchet = FlagC
)
