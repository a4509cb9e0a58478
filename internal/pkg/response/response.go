package response

import "github.com/gin-gonic/gin"

// Success writes data as the whole body.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Message writes {"message": msg}.
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"message": msg})
}

// Error writes {"detail": message, "code": code}.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"detail": message,
		"code":   code,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"detail":  message,
		"code":    code,
		"details": details,
	})
}

// Abort is Error followed by c.Abort, for middleware.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}
