package middleware

import (
	"log"

	"github.com/anoixa/photo-album/utils"
	"github.com/gin-gonic/gin"
)

// ErrorReporter 在处理链结束后记录 handler 通过 c.Error 上报的错误
// 响应已经写出，这里只负责日志
func ErrorReporter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(ContextRequestIDKey)
		for _, ginErr := range c.Errors {
			if utils.IsContextCanceled(ginErr.Err) {
				utils.LogIfDevf("[Error] %s %s canceled (request_id=%s): %v", c.Request.Method, c.FullPath(), requestID, ginErr.Err)
				continue
			}
			log.Printf("[Error] %s %s -> %d (request_id=%s): %s",
				c.Request.Method,
				c.FullPath(),
				c.Writer.Status(),
				requestID,
				utils.SanitizeLogMessage(ginErr.Error()),
			)
		}
	}
}
