package api

import (
	"github.com/gin-gonic/gin"
	"github.com/qiaoohe/Sleep-Planet/internal/rank"
	"github.com/qiaoohe/Sleep-Planet/internal/service"
)

// GetLeaderboard ranks the active cohort for the requested metric and scope.
// Anonymous callers are forced onto the global board with no self row.
func GetLeaderboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		view := rank.View{
			Metric: rank.Metric(c.Query("metric")),
			Scope:  rank.Scope(c.Query("scope")),
		}

		result, err := service.Leaderboard(c.Request.Context(), app.Cohorts(), app.Records(), user, view, today())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to build leaderboard")
			return
		}
		HandleSuccess(c, app.Logger(), result, map[string]any{
			"metric": result.Metric,
			"scope":  result.Scope,
		})
	}
}
