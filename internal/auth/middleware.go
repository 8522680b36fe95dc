package auth

import (
	"errors"
	"net/http"
	"strings"

	"auction-spot/internal/auctionerrors"
	model "auction-spot/internal/models"
	"auction-spot/utils"

	"github.com/gin-gonic/gin"
)

const (
	principalKey = "auth.principal"

	HeaderUserRole = "X-User-Role"
	HeaderUserID   = "X-User-Id"
)

// SetPrincipal stores the principal on the request context
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal resolved for the request, or Guest
func PrincipalFrom(c *gin.Context) Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(Principal); ok {
			return p
		}
	}
	return Guest()
}

// Middleware resolves the request principal from a bearer token or, failing
// that, from the X-User-Role / X-User-Id headers. Requests with neither are guests.
func Middleware(j JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := bearerToken(c.GetHeader("Authorization")); tok != "" {
			p, err := j.Verify(tok)
			if err != nil {
				utils.JSONError(c, http.StatusUnauthorized, errors.Join(auctionerrors.ErrUnauthorized, err), "invalid token")
				utils.Warn("auth: rejected bearer token", map[string]any{"path": c.Request.URL.Path, "error": err.Error()})
				c.Abort()
				return
			}
			SetPrincipal(c, p)
			c.Next()
			return
		}

		p := Guest()
		if role := c.GetHeader(HeaderUserRole); role != "" {
			p.Role = model.ParseRole(role)
			if id := c.GetHeader(HeaderUserID); id != "" {
				p.UserID = id
			}
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

func bearerToken(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	parts := strings.SplitN(v, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
