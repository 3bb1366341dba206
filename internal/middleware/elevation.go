package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Sdjishan552/fin/internal/core/domain"
	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
)

// ElevationHeader carries the token issued by the unlock endpoint.
const ElevationHeader = "X-Elevation-Token"

// ResolveSession builds the request's session for a target date: the token
// from the elevation header is verified against that exact date, so a token
// granted for another date leaves the session unelevated. Handlers call this
// once they know which date a mutation targets (path, body or stored row).
// A missing or invalid token is not an error here; services reject the
// mutation when elevation is actually required.
func ResolveSession(c *gin.Context, elevationSvc portssvc.ElevationSvcFacade, dateKey string) domain.Session {
	session := domain.Session{ViewDate: dateKey}
	if token := c.GetHeader(ElevationHeader); token != "" && dateKey != "" {
		session.PastUnlocked = elevationSvc.Verify(token, dateKey)
	}
	return session
}
