package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AnonymousUserID is the user recorded on writes when authentication is disabled.
const AnonymousUserID = "anonymous"

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
// Tokens are issued elsewhere; only HMAC signatures and the subject claim are checked.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			abortUnauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		if jwtSecret == "" {
			logger.Error("JWT secret not configured, rejecting request")
			abortUnauthorized(c, "Invalid token")
			return
		}

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			abortUnauthorized(c, msg)
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			logger.Warn("Invalid token claims or token is not valid")
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		setUser(c, claims.Subject)
		c.Next()
	}
}

// AnonymousMiddleware attributes every request to AnonymousUserID. Used when AUTH_ENABLED is false.
func AnonymousMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		setUser(c, AnonymousUserID)
		c.Next()
	}
}

func setUser(c *gin.Context, userID string) {
	ctx := WithUserID(c.Request.Context(), userID)
	ctx = WithLogger(ctx, GetLoggerFromCtx(ctx).With(slog.String("user_id", userID)))
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), userID)
}
