package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Keys set on gin.Context by AuthMiddleware.
const (
	ContextUserID     = "user_id"
	ContextEmployeeID = "employee_id"
	ContextRole       = "role"
)

// AuthMiddleware validates an HS256 bearer token (or the access_token
// cookie) and exposes its user_id, employee_id and role claims.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abort(c, ErrTokenNotFound, nil)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abort(c, ErrTokenExpired, nil)
				return
			}
			abort(c, ErrInvalidToken, nil)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, ErrInvalidToken, "invalid token claims")
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			abort(c, ErrInvalidToken, "user_id not found in token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role == "" {
			abort(c, ErrInvalidToken, "role not found in token")
			return
		}

		// Not every user is an employee; admins may have no employee record.
		employeeID, _ := claims["employee_id"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextEmployeeID, employeeID)
		c.Set(ContextRole, role)

		c.Next()
	}
}
