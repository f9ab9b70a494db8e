package logger

import (
	// 外部依赖
	"time"

	gin "github.com/gin-gonic/gin"
)

// LogWithWriter gin 访问日志中间件
func LogWithWriter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path
		ctx.Next()

		Infof(ctx, "%s %s status=%d latency=%s client=%s",
			ctx.Request.Method,
			path,
			ctx.Writer.Status(),
			time.Since(start),
			ctx.ClientIP(),
		)
	}
}
