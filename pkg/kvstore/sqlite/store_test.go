package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wallet.db")

	s, err := Open(path)
	require.NoError(t, err)

	val, err := s.Get(ctx, "financiera-currencies")
	assert.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set(ctx, "financiera-currencies", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "financiera-currencies", []byte(`[{"code":"USD"}]`)))
	require.NoError(t, s.Set(ctx, "financiera-language", []byte(`"fr"`)))

	val, err = s.Get(ctx, "financiera-currencies")
	assert.NoError(t, err)
	assert.Equal(t, `[{"code":"USD"}]`, string(val))

	keys, err := s.Keys(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"financiera-currencies", "financiera-language"}, keys)

	require.NoError(t, s.Close())

	t.Run("Survives Reopen", func(t *testing.T) {
		reopened, err := Open(path)
		require.NoError(t, err)
		defer reopened.Close()

		val, err := reopened.Get(ctx, "financiera-language")
		assert.NoError(t, err)
		assert.Equal(t, `"fr"`, string(val))
	})
}
