package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/logger"
)

// AuthRequired accepts "Authorization: Bearer <jwt>" and stores the token subject as the
// owner id. Clients that keep presenting bad tokens are throttled per IP.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.authFailures.blocked(limiterKey, now, authFailureLimit, authFailureWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many failed authentication attempts")
	}

	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	rawToken, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(rawToken) == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	ownerID, err := parseOwnerToken(strings.TrimSpace(rawToken), handler.secretKey, now)
	if err != nil {
		handler.authFailures.record(limiterKey, now, authFailureWindow)
		logger.Debug("rejected bearer token", "ip", limiterKey)
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextOwnerKey, ownerID)
	return c.Next()
}

func currentOwner(c *fiber.Ctx) string {
	ownerID, _ := c.Locals(contextOwnerKey).(string)
	return ownerID
}
