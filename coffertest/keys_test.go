package coffertest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKeyIsDeterministic(t *testing.T) {
	a := DeriveKey(t, 0)
	b := DeriveKey(t, 0)
	c := DeriveKey(t, 1)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.PublicKey(), c.PublicKey())
	assert.NoError(t, a.PublicKey().Condition().Validate())
}

func TestParseAddress(t *testing.T) {
	addr := NewCondition().Address()
	assert.Equal(t, addr, ParseAddress(t, addr.String()))
}
