package processor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lihongjie0209/cryptocore/cipher"
	"github.com/lihongjie0209/cryptocore/cipher/engines"
	"github.com/lihongjie0209/cryptocore/cipher/params"
	"github.com/lihongjie0209/cryptocore/wordarray"
)

func newInitializedRC4(t *testing.T, key []byte) cipher.StreamEngine {
	t.Helper()
	engine := engines.NewRC4()
	require.NoError(t, engine.Init(params.NewKeyParameter(key)))
	return engine
}

func TestStreamCipherProcessorRoundTrip(t *testing.T) {
	key := []byte("session key")
	plaintext := []byte("The quick brown fox jumps over the lazy dog")

	enc := NewStreamCipherProcessor(newInitializedRC4(t, key))
	ciphertext, err := enc.Finalize(wordarray.FromBytes(plaintext))
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext.Bytes())

	dec := NewStreamCipherProcessor(newInitializedRC4(t, key))
	recovered, err := dec.Finalize(ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, recovered.Bytes())
}

func TestStreamCipherProcessorHandlesUnalignedTail(t *testing.T) {
	key := []byte("k")
	// 5 bytes: one full word plus a single trailing byte.
	plaintext := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	enc := NewStreamCipherProcessor(newInitializedRC4(t, key))
	ciphertext, err := enc.Finalize(wordarray.FromBytes(plaintext))
	require.NoError(t, err)
	require.Equal(t, 5, ciphertext.SigBytes)

	dec := NewStreamCipherProcessor(newInitializedRC4(t, key))
	recovered, err := dec.Finalize(ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, recovered.Bytes())
}

func TestStreamCipherProcessorStreamingMatchesSingleShot(t *testing.T) {
	key := []byte("another key")
	message := make([]byte, 37)
	for i := range message {
		message[i] = byte(i)
	}

	single := NewStreamCipherProcessor(newInitializedRC4(t, key))
	want, err := single.Finalize(wordarray.FromBytes(message))
	require.NoError(t, err)

	streamed := NewStreamCipherProcessor(newInitializedRC4(t, key))
	part1, err := streamed.Process(wordarray.FromBytes(message[:3]))
	require.NoError(t, err)
	part2, err := streamed.Process(wordarray.FromBytes(message[3:20]))
	require.NoError(t, err)
	part3, err := streamed.Finalize(wordarray.FromBytes(message[20:]))
	require.NoError(t, err)

	got := wordarray.New(nil)
	got.Concat(part1).Concat(part2).Concat(part3)

	require.Equal(t, want.Bytes(), got.Bytes())
}
