package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
)

// requireUser extracts the authenticated user id or aborts with 401.
func requireUser(c *gin.Context) (string, bool) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return "", false
	}
	return userID, true
}

// requireRole extracts the authenticated user id and checks the caller holds one of
// the given roles, aborting with 401/403 otherwise.
func requireRole(c *gin.Context, roles ...string) (string, bool) {
	userID, ok := requireUser(c)
	if !ok {
		return "", false
	}

	role := c.GetString(string(domain.KeyUserRole))
	for _, r := range roles {
		if role == r {
			return userID, true
		}
	}
	c.Error(apperror.Forbidden("You do not have access to this resource"))
	return "", false
}
