package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberGeneratorFormat(t *testing.T) {
	g := NewNumberGenerator("ALB")
	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^ALB-[A-Z0-9]{6}$`, g.Next())
	}
}

func TestNumberGeneratorCustomPrefix(t *testing.T) {
	g := NewNumberGenerator("SJS")
	assert.Regexp(t, `^SJS-[A-Z0-9]{6}$`, g.Next())
}

func TestNumberGeneratorDefaultsPrefix(t *testing.T) {
	g := NewNumberGenerator("")
	assert.Regexp(t, `^ALB-[A-Z0-9]{6}$`, g.Next())
}
