package engines

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/cipher/params"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// FIPS-197 appendix C.1 vector.
func TestAESKnownVector(t *testing.T) {
	key := fromHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := fromHex(t, "00112233445566778899aabbccddeeff")
	want := fromHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	enc := NewAES()
	require.NoError(t, enc.Init(true, params.NewKeyParameter(key)))

	out := make([]byte, 16)
	n, err := enc.ProcessBlock(plaintext, 0, out, 0)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, want, out)

	dec := NewAES()
	require.NoError(t, dec.Init(false, params.NewKeyParameter(key)))

	back := make([]byte, 16)
	_, err = dec.ProcessBlock(out, 0, back, 0)
	require.NoError(t, err)
	assert.Equal(t, plaintext, back)
}

func TestAESRejectsBadKeySize(t *testing.T) {
	err := NewAES().Init(true, params.NewKeyParameter(make([]byte, 10)))
	require.ErrorIs(t, err, cipher.ErrConfig)
}

func TestAESRejectsUseBeforeInit(t *testing.T) {
	_, err := NewAES().ProcessBlock(make([]byte, 16), 0, make([]byte, 16), 0)
	require.ErrorIs(t, err, cipher.ErrConfig)
}

// RFC 6229, 40-bit key 0x0102030405, first 16 keystream bytes.
func TestRC4KnownKeystream(t *testing.T) {
	key := fromHex(t, "0102030405")
	want := fromHex(t, "b2396305f03dc027ccc3524a0a1118a8")

	r := NewRC4()
	require.NoError(t, r.Init(params.NewKeyParameter(key)))

	out := make([]byte, 16)
	require.NoError(t, r.XORKeyStream(out, make([]byte, 16)))
	assert.Equal(t, want, out)
}

func TestRC4RejectsUseAfterReset(t *testing.T) {
	r := NewRC4()
	require.NoError(t, r.Init(params.NewKeyParameter([]byte{0x01})))
	r.Reset()

	err := r.XORKeyStream(make([]byte, 4), make([]byte, 4))
	require.ErrorIs(t, err, cipher.ErrConfig)
}

func TestChaCha20RoundTrip(t *testing.T) {
	key := fromHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	nonce := fromHex(t, "000000000000004a00000000")
	plaintext := []byte("Ladies and Gentlemen of the class of '99: If I could offer you only one tip for the future, sunscreen would be it.")

	c := NewChaCha20()
	require.NoError(t, c.Init(params.NewParametersWithIV(params.NewKeyParameter(key), nonce)))

	out := make([]byte, len(plaintext))
	require.NoError(t, c.XORKeyStream(out, plaintext))
	assert.NotEqual(t, plaintext, out)

	back := NewChaCha20()
	require.NoError(t, back.Init(params.NewParametersWithIV(params.NewKeyParameter(key), nonce)))

	recovered := make([]byte, len(out))
	require.NoError(t, back.XORKeyStream(recovered, out))
	assert.Equal(t, plaintext, recovered)
}

func TestChaCha20RejectsBareKeyParameter(t *testing.T) {
	err := NewChaCha20().Init(params.NewKeyParameter(make([]byte, 32)))
	require.ErrorIs(t, err, cipher.ErrConfig)
}
