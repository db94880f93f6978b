package groupname

import (
	"crypto/rand"
	mrand "math/rand/v2"
)

// SuffixSource supplies the random token appended to unique names. The token
// provides entropy only; it is not a uniqueness guarantee. Callers creating
// resources must detect a name conflict at the provider and retry with a
// fresh unique name.
//
// Implementations must be safe for concurrent use.
type SuffixSource interface {
	Suffix() string
}

// SuffixFunc adapts an ordinary function to the SuffixSource interface.
// Tests substitute a deterministic sequence this way:
//
//	src := groupname.SuffixFunc(func() string { return "f3e" })
type SuffixFunc func() string

// Suffix calls f.
func (f SuffixFunc) Suffix() string { return f() }

// randomSuffixSource draws uniformly from a fixed alphabet for a fixed
// length. With the default 3 hex characters it yields 4096 combinations:
// enough that the handful of unique resources typically created per group
// rarely collide, without producing unwieldy names.
type randomSuffixSource struct {
	length   int
	alphabet string
}

// Suffix returns a fresh random token. Random bytes come from crypto/rand
// and are mapped onto the alphabet; if crypto/rand fails, math/rand/v2 fills
// in so the token stays random rather than degrading to a constant.
func (s randomSuffixSource) Suffix() string {
	b := make([]byte, s.length)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = byte(mrand.UintN(256))
		}
	}
	for i := range b {
		b[i] = s.alphabet[int(b[i])%len(s.alphabet)]
	}
	return string(b)
}
