package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// AdminGate is the single-role capability check gating the full-data and
// mutation endpoints. The secret comes from configuration, either plain or
// as a bcrypt hash; the hash wins when both are set.
type AdminGate struct {
	password     string
	passwordHash string
	jwtSecret    string
}

func NewAdminGate(password, passwordHash, jwtSecret string) *AdminGate {
	return &AdminGate{password: password, passwordHash: passwordHash, jwtSecret: jwtSecret}
}

// Verify reports whether the supplied secret matches the configured one.
func (g *AdminGate) Verify(secret string) bool {
	if secret == "" {
		return false
	}
	if g.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(secret)) == nil
	}
	return g.password != "" && secret == g.password
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SignToken mints the session token returned by the login endpoint.
func (g *AdminGate) SignToken() (string, error) {
	now := time.Now()
	claims := adminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(12 * time.Hour)),
		},
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(g.jwtSecret))
}

func (g *AdminGate) verifyToken(tok string) bool {
	token, err := jwt.ParseWithClaims(tok, &adminClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(g.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(*adminClaims)
	return ok && claims.Role == "admin"
}

func extractBearer(c echo.Context) string {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Require authenticates admin routes. The password query parameter is the
// primary credential; a Bearer token from the login endpoint is accepted as
// an alternative. On failure nothing downstream runs.
func (g *AdminGate) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if g.Verify(c.QueryParam("password")) {
				return next(c)
			}
			if tok := extractBearer(c); tok != "" && g.verifyToken(tok) {
				return next(c)
			}
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
	}
}
