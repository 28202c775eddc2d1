package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

func TestParse(t *testing.T) {
	t.Run("Moves, jumps and resets", func(t *testing.T) {
		// When: a mixed script is parsed
		intents, err := Parse([]string{"0,4", "8", "@1", "NEW", "reset", "-1"})

		// Then: every token becomes an intent in order
		require.NoError(t, err)
		assert.Equal(t, []Intent{
			{Kind: KindMove, Value: 0, Token: "0"},
			{Kind: KindMove, Value: 4, Token: "4"},
			{Kind: KindMove, Value: 8, Token: "8"},
			{Kind: KindJump, Value: 1, Token: "@1"},
			{Kind: KindReset, Token: "NEW"},
			{Kind: KindReset, Token: "reset"},
			{Kind: KindMove, Value: -1, Token: "-1"},
		}, intents)
	})

	t.Run("Empty script", func(t *testing.T) {
		intents, err := Parse([]string{"", " , "})

		require.NoError(t, err)
		assert.Empty(t, intents)
	})

	t.Run("Unknown tokens are rejected", func(t *testing.T) {
		for _, token := range []string{"a1", "@", "@x", "4.5"} {
			// When: a malformed token is parsed
			intents, err := Parse([]string{"0", token})

			// Then: the whole script is rejected
			require.ErrorIs(t, err, apperror.ErrInvalidScript, token)
			assert.Nil(t, intents)
		}
	})
}
