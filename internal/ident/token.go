package ident

import (
	"crypto/rand"

	"github.com/google/uuid"
)

const (
	base36         = "0123456789abcdefghijklmnopqrstuvwxyz"
	fragmentLength = 13
	// largest multiple of 36 below 256, bytes above it are rejected to keep the draw uniform
	rejectAbove = 252
)

// NewEditToken returns two concatenated base-36 fragments.
//
// The token is the only credential guarding the edit path: it never expires
// and is never rotated.
func NewEditToken() string {
	return fragment() + fragment()
}

func fragment() string {
	out := make([]byte, 0, fragmentLength)
	buf := make([]byte, fragmentLength*2)
	for len(out) < fragmentLength {
		// crypto/rand.Read never returns an error on supported platforms.
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if b >= rejectAbove {
				continue
			}
			out = append(out, base36[int(b)%36])
			if len(out) == fragmentLength {
				break
			}
		}
	}
	return string(out)
}

// NewLinkID returns an opaque id for a custom link.
func NewLinkID() string {
	return "link-" + uuid.NewString()
}
