package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alvin21mfmlai/toy-fhe-gentry/utils/sampling"
)

func TestPRNG(t *testing.T) {

	key := []byte{0x6b, 0xd1, 0x0f, 0x27, 0x83, 0x95, 0x4c, 0xe2, 0x1a, 0x30, 0x7e, 0x51, 0xc4, 0x08, 0xaa, 0x9f,
		0x2d, 0x6c, 0xe0, 0x14, 0x5b, 0x97, 0x38, 0xd3, 0x41, 0xbe, 0x72, 0x0d, 0xf5, 0x19, 0x86, 0xca}

	t.Run("KeyedPRNG/Deterministic", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
	})

	t.Run("KeyedPRNG/Reset", func(t *testing.T) {

		H, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		H.Read(sum0)

		for i := 0; i < 128; i++ {
			H.Read(sum1)
		}

		H.Reset()
		H.Read(sum1)

		require.Equal(t, sum0, sum1)
	})

	t.Run("KeyedPRNG/Key", func(t *testing.T) {

		H, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		require.Equal(t, key, H.Key())
	})
}
