package security

import (
	"errors"
	"time"

	"codearena/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Issuer tags every minted token; verification rejects any other issuer.
const Issuer = "codearena"

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// TeamClaims is the identity assertion carried by a contest token.
type TeamClaims struct {
	TeamID   string
	TeamName string
}

// GenerateToken mints a signed, time-bounded token over the team identity.
func GenerateToken(teamID, teamName string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"team_id":   teamID,
		"team_name": teamName,
		"iss":       Issuer,
		"exp":       now.Add(config.AppConfig.JWTExp).Unix(),
		"iat":       now.Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// VerifyToken checks signature, issuer and expiry. Any failure collapses
// to (nil, false); callers never see why a token was rejected.
func VerifyToken(tokenString string) (*TeamClaims, bool) {
	if tokenString == "" {
		return nil, false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return config.AppConfig.JWTKey, nil
	}, jwt.WithIssuer(Issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	teamID, ok := claims["team_id"].(string)
	if !ok || teamID == "" {
		return nil, false
	}
	teamName, ok := claims["team_name"].(string)
	if !ok {
		return nil, false
	}
	return &TeamClaims{TeamID: teamID, TeamName: teamName}, true
}

// GetTeamIDFromClaims extracts the team id from verified middleware claims.
func GetTeamIDFromClaims(claims map[string]interface{}) (string, error) {
	id, ok := claims["team_id"].(string)
	if !ok || id == "" {
		return "", errors.New("team_id claim is missing or not a string")
	}
	return id, nil
}

// GetTeamNameFromClaims extracts the team name from verified middleware claims.
func GetTeamNameFromClaims(claims map[string]interface{}) (string, error) {
	name, ok := claims["team_name"].(string)
	if !ok {
		return "", errors.New("team_name claim is missing or not a string")
	}
	return name, nil
}
