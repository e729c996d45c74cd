package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "strajk_session"

const sessionIDKey = "sessionID"

// SessionCookie makes sure every request carries a session id, issuing a new
// cookie when the client has none or sends a malformed one.
func SessionCookie(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)

		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, sessionID, int(ttl.Seconds()), "/", "", false, true)
		c.Set(sessionIDKey, sessionID)
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
