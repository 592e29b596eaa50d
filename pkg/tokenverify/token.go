package tokenverify

import (
	"ProjectInkwell/internal/entity"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const SecretEnvKey = "IDP_TOKEN_SECRET"

var (
	ErrEmptyHeader   = errors.New("empty Authorization header")
	ErrInvalidFormat = errors.New("invalid Authorization format")
	ErrMissingClaims = errors.New("token claims are missing required fields")
)

// Verify checks a provider-issued bearer header and resolves it to the
// caller identity. Verification is a single attempt per request; results
// are never cached.
func Verify(authHeader string) (entity.Identity, error) {
	log := logrus.WithField("func", "tokenverify.Verify")

	if authHeader == "" {
		return entity.Identity{}, ErrEmptyHeader
	}

	parts := strings.Split(authHeader, "Bearer ")
	if len(parts) != 2 {
		log.WithField("header_parts", len(parts)).Warn("Invalid Authorization format")
		return entity.Identity{}, ErrInvalidFormat
	}

	accessToken := strings.TrimSpace(parts[1])
	if accessToken == "" {
		return entity.Identity{}, ErrInvalidFormat
	}

	secret := os.Getenv(SecretEnvKey)
	if secret == "" {
		log.Error("IDP_TOKEN_SECRET environment variable not set")
		return entity.Identity{}, errors.New("identity provider secret not configured")
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			log.WithField("method", token.Header["alg"]).Warn("Unexpected signing method")
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to verify token")
		return entity.Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.Identity{}, ErrMissingClaims
	}

	return identityFromClaims(claims)
}

func identityFromClaims(claims jwt.MapClaims) (entity.Identity, error) {
	uid, _ := claims["uid"].(string)
	if uid == "" {
		// Some provider tokens carry the subject under "sub" instead.
		uid, _ = claims["sub"].(string)
	}
	email, _ := claims["email"].(string)

	if uid == "" || email == "" {
		return entity.Identity{}, ErrMissingClaims
	}

	name, _ := claims["name"].(string)
	photo, _ := claims["picture"].(string)

	return entity.Identity{
		UID:   uid,
		Email: email,
		Name:  name,
		Photo: photo,
	}, nil
}
