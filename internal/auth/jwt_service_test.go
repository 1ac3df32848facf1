package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateAccessToken(7, "fatima", "admin")
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "fatima", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokenCarriesItsID(t *testing.T) {
	svc := NewJWTService("test-secret")

	tokenID, token, err := svc.GenerateRefreshToken(7, "fatima", "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := svc.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestValidateTokenFailsClosed(t *testing.T) {
	svc := NewJWTService("test-secret")

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewJWTService("other-secret")
		token, err := other.GenerateAccessToken(7, "fatima", "user")
		assert.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(7, "fatima", "user")
		assert.NoError(t, err)

		tampered := token[:len(token)-2] + "xx"
		claims, err := svc.ValidateToken(tampered)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			UserID:   7,
			Username: "fatima",
			Role:     "user",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		token, err := expired.SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects a token signed with the wrong method", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 7})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		claims, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
