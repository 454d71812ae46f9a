package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError is the single place a domain error becomes an HTTP
// response. Internal faults are logged and genericized; stack text only
// leaks outside release mode.
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusOf(err)
	body := gin.H{
		"success": false,
		"message": apperrors.MessageOf(err),
	}
	if status == http.StatusInternalServerError {
		log.Printf("internal error serving %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		if gin.Mode() != gin.ReleaseMode {
			body["stack"] = err.Error()
		}
	}
	c.JSON(status, body)
}

// respondBindError renders request-shape failures as 400 with
// per-field messages when the validator produced them.
func respondBindError(c *gin.Context, err error) {
	body := gin.H{
		"success": false,
		"message": "invalid request body",
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			messages = append(messages, "field '"+fe.Field()+"' failed on the '"+fe.Tag()+"' rule")
		}
		body["errors"] = messages
	} else {
		body["message"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}

// parseIDParam reads a numeric :param, answering 400 itself on garbage.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(id), true
}
