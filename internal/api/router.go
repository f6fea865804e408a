package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/qiaoohe/Sleep-Planet/internal/auth"
)

// NewRouter wires the full route table. Reads that make sense anonymously
// (leaderboard, insight) sit behind optional auth; every write requires a
// token.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", PostLogin(app))

	open := r.Group("/", auth.Optional(app.Auth()))
	open.GET("/leaderboard", GetLeaderboard(app))
	open.GET("/sleep/insight", GetInsight(app))

	protected := r.Group("/", auth.Require(app.Auth()))
	protected.POST("/sleep/start", PostSleepStart(app))
	protected.POST("/sleep/wake", PostWakeUp(app))
	protected.PUT("/sleep/:date", PutRecord(app))
	protected.GET("/sleep", GetRecords(app))
	protected.GET("/sleep/today", GetToday(app))

	return r
}
