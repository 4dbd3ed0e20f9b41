package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyParameterDefensiveCopy(t *testing.T) {
	key := []byte{0x01, 0x02, 0x03}
	kp := NewKeyParameter(key)

	key[0] = 0xff

	assert.Equal(t, []byte{0x01, 0x02, 0x03}, kp.Key())
	assert.True(t, kp.IsCipherParameters())
}

func TestParametersWithIVDefensiveCopy(t *testing.T) {
	kp := NewKeyParameter([]byte{0xaa})
	iv := []byte{0x01, 0x02}
	p := NewParametersWithIV(kp, iv)

	iv[0] = 0xff

	assert.Equal(t, []byte{0x01, 0x02}, p.IV())
	assert.Same(t, kp, p.Parameters())
	assert.True(t, p.IsCipherParameters())
}
