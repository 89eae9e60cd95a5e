// Package keccak implements the Keccak-f[1600] permutation: a fixed,
// total, 24-round transform over a 1600-bit (200-byte) state, as specified
// by FIPS 202. It backs the duplex-sponge construction in package strobe and
// exposes no hashing API of its own — STROBE's state machine owns all
// absorption and squeezing.
package keccak

import "encoding/binary"

// Width is the size in bytes of a Keccak-f[1600] state.
const Width = 200

// Lanes is the number of 64-bit words in a Keccak-f[1600] state (5x5).
const Lanes = 25

const rounds = 24

// Round constants for iota, one per round. FIPS 202 section 3.2.5.
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// Rotation offsets for rho, indexed the same way as piLane below.
var rotationConstants = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

// piLane[i] gives the destination lane index for the i-th step of the
// combined rho/pi permutation, starting from lane 1.
var piLane = [24]uint{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

// permuteLanes applies the 24-round Keccak-f[1600] permutation to a in
// place, operating entirely in lane (uint64) space.
func permuteLanes(a *[Lanes]uint64) {
	var bc [5]uint64
	for r := 0; r < rounds; r++ {
		// theta
		for i := range bc {
			bc[i] = a[i] ^ a[5+i] ^ a[10+i] ^ a[15+i] ^ a[20+i]
		}
		for i := range bc {
			t := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < Lanes; j += 5 {
				a[i+j] ^= t
			}
		}

		// rho + pi
		temp := a[1]
		for i := range piLane {
			j := piLane[i]
			temp2 := a[j]
			a[j] = rotl64(temp, rotationConstants[i])
			temp = temp2
		}

		// chi
		for j := 0; j < Lanes; j += 5 {
			for i := range bc {
				bc[i] = a[j+i]
			}
			for i := range bc {
				a[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		// iota
		a[0] ^= roundConstants[r]
	}
}

// Permute applies Keccak-f[1600] to the 200-byte state in place. The state
// is interpreted as 25 little-endian 64-bit lanes regardless of host
// endianness; the byte layout at rest is always little-endian so that the
// same state can be addressed byte-wise (for absorb/squeeze) and lane-wise
// (for the permutation) without keeping two copies in sync.
func Permute(st *[Width]byte) {
	var lanes [Lanes]uint64
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(st[i*8:])
	}

	permuteLanes(&lanes)

	for i := range lanes {
		binary.LittleEndian.PutUint64(st[i*8:], lanes[i])
	}
}

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}
