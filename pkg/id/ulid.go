// Package id generates lexicographically sortable identifiers for requests and builds.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"strings"
	"time"
)

// ErrInvalidULID is returned when a string is not a well-formed ULID.
var ErrInvalidULID = errors.New("id: invalid ULID")

// Crockford's Base32 alphabet (excludes I, L, O, U).
const crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	ulidLen = 26
	timeLen = 10
)

// NewULID returns a 26-character ULID for the current time.
func NewULID() string {
	return ULIDAt(time.Now())
}

// ULIDAt returns a ULID whose timestamp part encodes t with millisecond precision.
// Layout: 10 chars timestamp (48-bit ms) + 16 chars random (80-bit).
func ULIDAt(t time.Time) string {
	var entropy [10]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		binary.BigEndian.PutUint64(entropy[:8], uint64(time.Now().UnixNano()))
	}

	var out [ulidLen]byte

	ms := uint64(t.UnixMilli())
	for i := timeLen - 1; i >= 0; i-- {
		out[i] = crockfordBase32[ms&0x1F]
		ms >>= 5
	}

	// 80 random bits, 5 bits per char, consumed most significant first
	hi := uint64(entropy[0])<<32 | uint64(binary.BigEndian.Uint32(entropy[1:5]))
	lo := uint64(binary.BigEndian.Uint32(entropy[5:9]))<<8 | uint64(entropy[9])
	for i := range 8 {
		out[timeLen+i] = crockfordBase32[(hi>>(35-5*i))&0x1F]
		out[timeLen+8+i] = crockfordBase32[(lo>>(35-5*i))&0x1F]
	}

	return string(out[:])
}

// ULIDTime extracts the timestamp encoded in a ULID.
func ULIDTime(s string) (time.Time, error) {
	if len(s) != ulidLen {
		return time.Time{}, ErrInvalidULID
	}

	var ms uint64
	for i := range ulidLen {
		v := strings.IndexByte(crockfordBase32, s[i])
		if v < 0 {
			return time.Time{}, ErrInvalidULID
		}
		if i < timeLen {
			ms = ms<<5 | uint64(v)
		}
	}
	if ms>>48 != 0 {
		return time.Time{}, ErrInvalidULID
	}

	return time.UnixMilli(int64(ms)).UTC(), nil
}
