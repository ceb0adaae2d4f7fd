package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response 携带 data 的响应，data 为 nil 时输出 null
type Response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// MessageResponse 携带 message 的响应
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Respond(c *gin.Context, httpStatus int, status string, data interface{}) {
	c.JSON(httpStatus, Response{
		Status: status,
		Data:   data,
	})
}

func RespondMessage(c *gin.Context, httpStatus int, status string, message string) {
	c.JSON(httpStatus, MessageResponse{
		Status:  status,
		Message: message,
	})
}

// RespondSuccess sends a success response with data.
func RespondSuccess(c *gin.Context, data interface{}) {
	Respond(c, http.StatusOK, StatusSuccess, data)
}

// RespondFail sends a fail response with data.
func RespondFail(c *gin.Context, httpStatus int, data interface{}) {
	Respond(c, httpStatus, StatusFail, data)
}

// RespondFailMessage sends a fail response with message.
func RespondFailMessage(c *gin.Context, httpStatus int, message string) {
	RespondMessage(c, httpStatus, StatusFail, message)
}

// RespondError sends an error response with message.
func RespondError(c *gin.Context, httpStatus int, message string) {
	RespondMessage(c, httpStatus, StatusError, message)
}
