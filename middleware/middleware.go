package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/consult-agent/global"
)

// CorsHandle 跨域; 允许的来源取配置, 未配置时放开(聊天挂件会内嵌在客户站点)
func CorsHandle() gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(global.Config.Cors) > 0 {
		conf.AllowOrigins = global.Config.Cors
	} else {
		conf.AllowAllOrigins = true
		conf.AllowCredentials = false
	}

	return cors.New(conf)
}

// OptionsMethod 预检请求直接放行
func OptionsMethod(ctx *gin.Context) {
	if ctx.Request.Method == http.MethodOptions {
		ctx.AbortWithStatus(http.StatusNoContent)
		return
	}
	ctx.Next()
}
