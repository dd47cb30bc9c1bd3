package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/bizbooks/bookkeeping_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates Bearer JWT
// tokens, stores the authenticated user ID in the request context and
// enriches the request logger with it.
func AuthMiddleware(jwtSecret, issuer, audience string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Authorization header format must be Bearer {token}"))
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret, issuer, audience)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			// Absent or stale credentials are 401; a token that cannot be
			// ours (garbled or wrongly signed) is 403.
			status := http.StatusUnauthorized
			msg := "Invalid token"
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				msg = "Token has expired"
			case errors.Is(err, jwt.ErrTokenNotValidYet):
				msg = "Token not valid yet"
			case errors.Is(err, jwt.ErrTokenMalformed):
				status, msg = http.StatusForbidden, "Token is malformed"
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				status, msg = http.StatusForbidden, "Token signature is invalid"
			}
			c.AbortWithStatusJSON(status, dto.Fail(msg))
			return
		}

		if claims.UserID == "" {
			logger.Error("User ID missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Invalid token claims"))
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, claims.UserID)
		enrichedLogger := logger.With(slog.String("user_id", claims.UserID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
