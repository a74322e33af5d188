package miscutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMustParseURL(t *testing.T) {
	parsed := MustParseURL("https://osu.ppy.sh/oauth/authorize")
	require.Equal(t, "osu.ppy.sh", parsed.Host)

	require.Panics(t, func() { MustParseURL("://not-a-url") })
}

func TestRandomString(t *testing.T) {
	first, err := RandomString(32)
	require.NoError(t, err, "RandomString should not have returned an error")
	// 32 bytes of entropy encode to 43 URL-safe characters.
	require.Len(t, first, 43)
	require.NotContains(t, first, "=")

	second, err := RandomString(32)
	require.NoError(t, err, "RandomString should not have returned an error")
	require.NotEqual(t, first, second, "Two random strings should not collide")
}
