package handlers

import (
	"log"
	"strconv"

	"restaurant-ops-api/middleware"

	"github.com/gin-gonic/gin"
)

// fail writes the {success:false, message} error shape and stops the chain
func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

// serverError logs err with the request id and answers 500
func serverError(c *gin.Context, message string, err error) {
	log.Printf("❌ [%s] %s %s: %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, message, err)
	fail(c, 500, message)
}

// paramID parses the :id path parameter, answering 400 when it is not a number
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, 400, "Invalid id")
		return 0, false
	}
	return id, true
}
