package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Identity modes.
const (
	ModeHeader = "header" // trusted X-User-ID header, e.g. behind a gateway
	ModeJWT    = "jwt"    // Bearer token, HS256, user_id claim
)

// IdentityMiddleware resolves the calling user and stores the id under
// "user_id" in the gin context.
type IdentityMiddleware struct {
	mode      string
	jwtSecret []byte
}

func NewIdentityMiddleware(mode, jwtSecret string) *IdentityMiddleware {
	if mode == "" {
		mode = ModeHeader
	}
	return &IdentityMiddleware{
		mode:      mode,
		jwtSecret: []byte(jwtSecret),
	}
}

// RequireIdentity aborts with 401 unless the request carries a valid
// identity for the configured mode.
func (m *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			userID int
			err    error
		)
		switch m.mode {
		case ModeJWT:
			userID, err = m.fromBearerToken(c)
		default:
			userID, err = m.fromHeader(c)
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func (m *IdentityMiddleware) fromHeader(c *gin.Context) (int, error) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		return 0, errMissingIdentity
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errInvalidIdentity
	}
	return id, nil
}

func (m *IdentityMiddleware) fromBearerToken(c *gin.Context) (int, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, errMissingIdentity
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidIdentity
		}
		return m.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, errInvalidIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errInvalidIdentity
	}
	// JSON numbers decode as float64.
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return 0, errInvalidIdentity
	}
	return int(rawID), nil
}

var (
	errMissingIdentity = errors.New("missing identity")
	errInvalidIdentity = errors.New("invalid identity")
)
