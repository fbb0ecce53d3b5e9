package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Session key holding the logged-in user's email.
const userkey = "Email"

// AuthRequired is a simple middleware to check the request's JWT.
func AuthRequired(c *gin.Context) {
	email, err := JWT_decoder(c)
	if err != nil {
		// Abort the request with the appropriate error code
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	// Make the email available to the handlers down the chain
	c.Set(userkey, email)
	c.Next()
}
