package response

import "github.com/gin-gonic/gin"

// Envelope: success responses are {"success":true,"data":...}, errors are
// {"success":false,"message":...}.

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func SuccessMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(statusCode, body)
}

// List wraps slice payloads with a count, matching the listing endpoints.
func List(c *gin.Context, statusCode int, count int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
