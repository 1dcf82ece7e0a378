package jwt_test

import (
	"sharedhouse/config"
	"sharedhouse/infras/jwt"
	"sharedhouse/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret, issuer string) jwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = secret
	cfg.JWT.Issuer = issuer
	cfg.JWT.AccessExpireMin = 30

	return jwt.New(cfg)
}

func TestIssueAndValidate(t *testing.T) {
	svc := newService("secret", "sharedhouse")

	token, err := svc.IssueAccessToken(jwt.Principal{UserID: "u1", Username: "alice", RoomNumber: "201"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "201", claims.RoomNumber)
	assert.Equal(t, "u1", claims.Subject)
}

func TestValidateToken_Rejections(t *testing.T) {
	svc := newService("secret", "sharedhouse")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := newService("other", "sharedhouse").IssueAccessToken(jwt.Principal{UserID: "u1"})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := newService("secret", "elsewhere").IssueAccessToken(jwt.Principal{UserID: "u1"})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := svc.IssueAccessToken(jwt.Principal{Username: "ghost"})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})

	t.Run("expired", func(t *testing.T) {
		restore := timezone.SetClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
		token, err := svc.IssueAccessToken(jwt.Principal{UserID: "u1"})
		restore()
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingToken)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}
