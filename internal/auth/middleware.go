package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// TokenName is the cookie and header the session token travels in.
const TokenName = "auth-token"

const contextKeyAccountID = "account_id"

// AccountIDFromContext returns the account ID set by the guards. 0 if not set.
func AccountIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyAccountID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// RequireTokenCookie guards form-mode routes. Missing and invalid tokens get
// the same treatment: redirect to the landing page with an error message.
func RequireTokenCookie(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenName)
		if err != nil || token == "" {
			redirectUnauthorized(c, "Access Denied")
			return
		}
		accountID, err := issuer.Parse(token)
		if err != nil {
			redirectUnauthorized(c, "Invalid Token")
			return
		}
		c.Set(contextKeyAccountID, accountID)
		c.Next()
	}
}

// RequireTokenHeader guards API-mode routes; failures answer 401.
func RequireTokenHeader(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access Denied"})
			return
		}
		accountID, err := issuer.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Token"})
			return
		}
		c.Set(contextKeyAccountID, accountID)
		c.Next()
	}
}

func redirectUnauthorized(c *gin.Context, msg string) {
	c.Redirect(http.StatusFound, "/?error="+url.QueryEscape(msg))
	c.Abort()
}
