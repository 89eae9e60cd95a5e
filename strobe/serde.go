package strobe

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/dnsimmons/strobego/internal/keccak"
)

// State is the serializable snapshot of a Strobe's internal fields, for
// carrying a suspended session across a process boundary. It is opaque
// data, not a protocol message: nothing about its encoding is negotiated
// with a peer, so JSON (stdlib encoding/json) is used rather than any
// wire-format library in the dependency surface, which exist for on-the-wire
// interop this snapshot never needs.
type State struct {
	StateHex string   `json:"state"`
	Sec      SecParam `json:"sec"`
	Rate     int      `json:"rate"`
	Pos      int      `json:"pos"`
	PosBegin int      `json:"pos_begin"`
	Role     string   `json:"role"`
}

// Marshal snapshots s into JSON bytes.
func (s *Strobe) Marshal() ([]byte, error) {
	snap := State{
		StateHex: hex.EncodeToString(s.st[:]),
		Sec:      s.sec,
		Rate:     s.rate,
		Pos:      s.pos,
		PosBegin: s.posBegin,
		Role:     s.role.String(),
	}
	return json.Marshal(snap)
}

// UnmarshalStrobe reconstructs a Strobe from JSON bytes produced by Marshal.
// It validates the decoded shape (state length, sec/rate consistency) rather
// than trusting it, since the bytes may have come from outside this process.
func UnmarshalStrobe(data []byte) (Strobe, error) {
	var snap State
	if err := json.Unmarshal(data, &snap); err != nil {
		return Strobe{}, fmt.Errorf("strobe: decode snapshot: %w", err)
	}

	raw, err := hex.DecodeString(snap.StateHex)
	if err != nil {
		return Strobe{}, fmt.Errorf("strobe: decode state hex: %w", err)
	}
	if len(raw) != keccak.Width {
		return Strobe{}, fmt.Errorf("strobe: state must be %d bytes, got %d", keccak.Width, len(raw))
	}

	if snap.Sec != Sec128 && snap.Sec != Sec256 {
		return Strobe{}, fmt.Errorf("%w: sec %d", ErrBadSecParam, snap.Sec)
	}
	wantRate := keccak.Width - int(snap.Sec)/4 - 2
	if snap.Rate != wantRate {
		return Strobe{}, fmt.Errorf("strobe: rate %d inconsistent with sec %d", snap.Rate, snap.Sec)
	}
	if snap.Pos < 0 || snap.Pos > keccak.Width || snap.PosBegin < 0 || snap.PosBegin > keccak.Width {
		return Strobe{}, fmt.Errorf("strobe: pos/pos_begin out of range")
	}

	role, err := roleFromString(snap.Role)
	if err != nil {
		return Strobe{}, err
	}

	var out Strobe
	copy(out.st[:], raw)
	out.sec = snap.Sec
	out.rate = snap.Rate
	out.pos = snap.Pos
	out.posBegin = snap.PosBegin
	out.role = role
	return out, nil
}
