package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

// AuthenticateToken validates a Bearer JWT and stores the caller's user id
// under "userId" in the echo context.
func AuthenticateToken(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"result": false, "message": "missing token"})
			}
			tokenStr := strings.TrimPrefix(h, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusForbidden, echo.Map{"result": false, "message": "invalid token"})
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if id, ok := claims["id"].(float64); ok {
					c.Set("userId", uint(id))
				}
			}
			return next(c)
		}
	}
}

// UserID reads the id stored by AuthenticateToken; zero when absent.
func UserID(c echo.Context) uint {
	if v, ok := c.Get("userId").(uint); ok {
		return v
	}
	return 0
}
