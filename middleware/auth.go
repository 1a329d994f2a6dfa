package middleware

import (
	"nexustech/constants"
	"nexustech/models"
	"nexustech/response"
	"nexustech/services"
	"nexustech/types"

	"github.com/gin-gonic/gin"
)

// TokenParser turns a session token into the email it was issued for
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// Authenticate requires a valid session cookie and stores the principal
func Authenticate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.TokenCookieName)
		if err != nil || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		email, err := tokens.ParseToken(token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(constants.CtxPrincipal, &types.Principal{Email: email})
		c.Next()
	}
}

// RequireRole loads the caller's current role and checks it against roles.
// It must run after Authenticate.
func RequireRole(dir services.Directory, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		role, err := services.CheckRole(c.Request.Context(), dir, principal.Email, roles...)
		if err != nil {
			response.HandleError(c, err)
			c.Abort()
			return
		}

		principal.Role = role
		c.Next()
	}
}

// GetPrincipal returns the principal stored by Authenticate
func GetPrincipal(c *gin.Context) (*types.Principal, bool) {
	v, exists := c.Get(constants.CtxPrincipal)
	if !exists {
		return nil, false
	}
	principal, ok := v.(*types.Principal)
	return principal, ok && principal != nil
}

// ErrorHandler renders errors attached with c.Error when no response was written
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			response.HandleError(c, c.Errors.Last().Err)
		}
	}
}
