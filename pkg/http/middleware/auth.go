package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	httpx "github.com/scenicrp/roster/pkg/http"
	"github.com/scenicrp/roster/pkg/http/jwt"
)

// Locals keys set by the middleware for downstream handlers.
const (
	AccountIdKey = "accountId"
	SessionIdKey = "sessionId"
)

// Authorization parses the Bearer token, verifies the session is still live
// through the supplied check, and exposes the account and session ids to the
// handlers. A valid signature over a dead session (logout, store wipe) is
// rejected.
func Authorization(secretKey string, live func(sessionId string) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return httpx.WithRepErrMsg(c, httpx.AuthorizationEmpty.Code, httpx.AuthorizationEmpty.Msg, c.Path())
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return httpx.WithRepErrMsg(c, httpx.InvalidToken.Code, httpx.InvalidToken.Msg, c.Path())
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return httpx.WithRepErrMsg(c, httpx.TokenExpired.Code, httpx.TokenExpired.Msg, c.Path())
			}
			return httpx.WithRepErrMsg(c, httpx.InvalidToken.Code, err.Error(), c.Path())
		}
		if live != nil && !live(claims.SessionId) {
			return httpx.WithRepErrMsg(c, httpx.Unauthorized.Code, httpx.Unauthorized.Msg, c.Path())
		}

		c.Locals(AccountIdKey, claims.AccountId)
		c.Locals(SessionIdKey, claims.SessionId)
		return c.Next()
	}
}
