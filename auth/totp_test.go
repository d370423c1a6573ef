package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/folio/auth"
)

// rfcSecret is the base32 form of "12345678901234567890", the shared
// secret used by the RFC 6238 appendix test vectors.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestCodeAtMatchesRFCVectors(t *testing.T) {
	// Last six digits of the SHA-1 vectors in RFC 6238 appendix B.
	vectors := []struct {
		unix int64
		code string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1111111111, "050471"},
		{1234567890, "005924"},
		{2000000000, "279037"},
		{20000000000, "353130"},
	}
	for _, v := range vectors {
		code, err := auth.CodeAt(rfcSecret, time.Unix(v.unix, 0))
		require.NoError(t, err)
		assert.Equal(t, v.code, code, "at unix %d", v.unix)
	}
}

func TestVerifyCodeAcceptsAdjacentSteps(t *testing.T) {
	now := time.Unix(1111111111, 0)

	current, err := auth.CodeAt(rfcSecret, now)
	require.NoError(t, err)
	previous, err := auth.CodeAt(rfcSecret, now.Add(-30*time.Second))
	require.NoError(t, err)
	next, err := auth.CodeAt(rfcSecret, now.Add(30*time.Second))
	require.NoError(t, err)

	assert.True(t, auth.VerifyCode(rfcSecret, current, now))
	assert.True(t, auth.VerifyCode(rfcSecret, previous, now))
	assert.True(t, auth.VerifyCode(rfcSecret, next, now))
}

func TestVerifyCodeRejectsDistantSteps(t *testing.T) {
	now := time.Unix(1111111111, 0)

	old, err := auth.CodeAt(rfcSecret, now.Add(-2*30*time.Second))
	require.NoError(t, err)
	assert.False(t, auth.VerifyCode(rfcSecret, old, now))
}

func TestVerifyCodeToleratesSpacing(t *testing.T) {
	now := time.Unix(59, 0)
	assert.True(t, auth.VerifyCode(rfcSecret, "287 082", now))
	assert.True(t, auth.VerifyCode(rfcSecret, " 287082 ", now))
}

func TestVerifyCodeRejectsMalformedInput(t *testing.T) {
	now := time.Unix(59, 0)
	assert.False(t, auth.VerifyCode(rfcSecret, "", now))
	assert.False(t, auth.VerifyCode(rfcSecret, "12345", now))
	assert.False(t, auth.VerifyCode(rfcSecret, "1234567", now))
	assert.False(t, auth.VerifyCode(rfcSecret, "28708a", now))
}

func TestVerifyCodeBadSecret(t *testing.T) {
	assert.False(t, auth.VerifyCode("not!base32", "123456", time.Unix(59, 0)))
}
