package receipt

import (
	"crypto/rand"
	"fmt"
)

const numberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NumberGenerator produces human-facing receipt codes: a configured prefix
// plus a 6-character random alphanumeric suffix. Uniqueness is best-effort
// (36^6, about 2.2 billion codes); collisions are theoretically possible and
// are not checked against history, since staff may overwrite the code anyway.
type NumberGenerator struct {
	prefix string
}

func NewNumberGenerator(prefix string) *NumberGenerator {
	if prefix == "" {
		prefix = "ALB"
	}
	return &NumberGenerator{prefix: prefix}
}

// Next returns a fresh receipt code, e.g. "ALB-7K2Q9X".
func (g *NumberGenerator) Next() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; fall back to
		// a constant so receipt creation still works.
		return g.prefix + "-000000"
	}
	for i, b := range buf {
		buf[i] = numberAlphabet[int(b)%len(numberAlphabet)]
	}
	return fmt.Sprintf("%s-%s", g.prefix, buf)
}
