package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/orrn/labelhook/internal/core"
)

type credentialRequest struct {
	Authentication string `json:"authentication"`
}

type AuthMiddleware struct {
	auth *core.Authenticator
}

func NewAuthMiddleware(auth *core.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireSecret checks the "authentication" field of the JSON body. The body
// is cached on the context, so handlers must read it with
// ShouldBindBodyWith.
func (a *AuthMiddleware) RequireSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil || !a.auth.IsAuthorized(req.Authentication) {
			c.Error(core.ErrUnauthorized)
			c.String(http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}

// WithAuth decorates a single handler with RequireSecret.
func (a *AuthMiddleware) WithAuth(h gin.HandlerFunc) gin.HandlerFunc {
	gate := a.RequireSecret()
	return func(c *gin.Context) {
		gate(c)
		if c.IsAborted() {
			return
		}
		h(c)
	}
}
