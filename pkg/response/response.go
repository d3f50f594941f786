// Package response holds the JSON envelope helpers shared by all HTTP
// handlers: successes carry the payload directly, failures carry a single
// human-readable message under "error".
package response

import (
	"github.com/gin-gonic/gin"
)

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
