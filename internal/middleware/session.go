package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rrparlour/parlour-booking/internal/session"
)

const ContextSession = "sessionScope"

// Scope ties the request to its server-side session record.
type Scope struct {
	SID   string
	State *session.State
}

// Sessions resolves the session cookie into request-scoped state, issuing a
// fresh anonymous session when no valid cookie arrived, and writes the state
// back after the handler chain runs. Handlers mutate state through
// CurrentSession and never touch the store directly.
func Sessions(mgr *session.Manager, logg zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var scope *Scope
		if cookie, err := c.Cookie(session.CookieName); err == nil {
			if sid, st, err := mgr.Load(ctx, cookie); err == nil {
				scope = &Scope{SID: sid, State: st}
			}
		}

		if scope == nil {
			token, sid, st, err := mgr.Issue(ctx)
			if err != nil {
				// Session backend unreachable; run the request without a
				// session rather than failing it.
				logg.Error().Err(err).Msg("failed to issue session")
				c.Next()
				return
			}
			c.SetCookie(session.CookieName, token, 0, "/", "", false, true)
			scope = &Scope{SID: sid, State: st}
		}

		c.Set(ContextSession, scope)
		c.Next()

		if err := mgr.Save(ctx, scope.SID, scope.State); err != nil {
			logg.Warn().Err(err).Msg("failed to persist session")
		}
	}
}

// CurrentSession returns the request's session state, or nil when the
// sessions middleware could not establish one.
func CurrentSession(c *gin.Context) *session.State {
	val, exists := c.Get(ContextSession)
	if !exists {
		return nil
	}
	scope, ok := val.(*Scope)
	if !ok {
		return nil
	}
	return scope.State
}

// CurrentScope exposes the session id alongside the state, for handlers that
// destroy the server-side record (logout).
func CurrentScope(c *gin.Context) *Scope {
	val, exists := c.Get(ContextSession)
	if !exists {
		return nil
	}
	scope, _ := val.(*Scope)
	return scope
}
