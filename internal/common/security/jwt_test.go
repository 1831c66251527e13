package security

import (
	"testing"
	"time"

	"codearena/internal/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func setupJWT(t *testing.T, exp time.Duration) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: exp,
	}
	InitJWT()
}

func TestGenerateAndVerifyToken(t *testing.T) {
	setupJWT(t, 3*time.Hour)

	token, err := GenerateToken("team-42", "Segfault Society")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, valid := VerifyToken(token)
	require.True(t, valid)
	require.Equal(t, "team-42", claims.TeamID)
	require.Equal(t, "Segfault Society", claims.TeamName)
}

func TestVerifyTokenExpired(t *testing.T) {
	setupJWT(t, -time.Minute)

	token, err := GenerateToken("team-42", "Segfault Society")
	require.NoError(t, err)

	claims, valid := VerifyToken(token)
	require.False(t, valid)
	require.Nil(t, claims)
}

func TestVerifyTokenWrongIssuer(t *testing.T) {
	setupJWT(t, 3*time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"team_id":   "team-42",
		"team_name": "Segfault Society",
		"iss":       "someone-else",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString(config.AppConfig.JWTKey)
	require.NoError(t, err)

	_, valid := VerifyToken(token)
	require.False(t, valid)
}

func TestVerifyTokenBadSignature(t *testing.T) {
	setupJWT(t, 3*time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"team_id":   "team-42",
		"team_name": "Segfault Society",
		"iss":       Issuer,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte("a-different-secret"))
	require.NoError(t, err)

	_, valid := VerifyToken(token)
	require.False(t, valid)
}

func TestVerifyTokenMalformed(t *testing.T) {
	setupJWT(t, 3*time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, valid := VerifyToken(tok)
		require.False(t, valid, "token %q should be invalid", tok)
	}
}

func TestVerifyTokenMissingTeamID(t *testing.T) {
	setupJWT(t, 3*time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"team_name": "Segfault Society",
		"iss":       Issuer,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString(config.AppConfig.JWTKey)
	require.NoError(t, err)

	_, valid := VerifyToken(token)
	require.False(t, valid)
}
