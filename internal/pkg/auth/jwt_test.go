package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "campushub.test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestJWTService(time.Hour)

	tokenString, expiresIn, err := service.Generate(42, "teacher")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := service.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "teacher", claims.Role)
	assert.Equal(t, "campushub.test", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	service := newTestJWTService(time.Hour)

	first, _, err := service.Generate(1, "student")
	require.NoError(t, err)
	second, _, err := service.Generate(1, "student")
	require.NoError(t, err)

	firstClaims, err := service.Validate(first)
	require.NoError(t, err)
	secondClaims, err := service.Validate(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := newTestJWTService(-time.Minute)

	tokenString, _, err := service.Generate(7, "admin")
	require.NoError(t, err)

	_, err = service.Validate(tokenString)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	service := newTestJWTService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub.test",
	})

	tokenString, _, err := other.Generate(7, "admin")
	require.NoError(t, err)

	_, err = service.Validate(tokenString)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	// alg=none must never pass validation regardless of payload.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: 1,
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.Validate(tokenString)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := newTestJWTService(time.Hour)

	for _, tokenString := range []string{"", "abc", "a.b.c"} {
		_, err := service.Validate(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestJWTService_RejectsClaimsWithoutIdentity(t *testing.T) {
	service := newTestJWTService(time.Hour)

	tokenString, _, err := service.Generate(0, "")
	require.NoError(t, err)

	_, err = service.Validate(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing prefix", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"prefix only", "Bearer ", "", true},
		{"lowercase scheme", "bearer abc.def.ghi", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
