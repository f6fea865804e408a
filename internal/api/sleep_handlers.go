package api

import (
	"errors"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qiaoohe/Sleep-Planet/internal/annotate"
	"github.com/qiaoohe/Sleep-Planet/internal/record"
	"github.com/qiaoohe/Sleep-Planet/internal/service"
)

func today() string {
	return record.Today(time.Now())
}

// PostSleepStart opens tonight's record with the supplied bedtime.
func PostSleepStart(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.StartSleepRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateStartSleepRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec, err := service.StartSleep(c.Request.Context(), app.Records(), user, today(), body.BedTime)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to start sleep")
			return
		}
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

// PostWakeUp closes tonight's open record; without one it answers 404,
// surfacing the lifecycle's no-op precondition to the client.
func PostWakeUp(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.WakeUpRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateWakeUpRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec, err := service.WakeUp(c.Request.Context(), app.Records(), user, today(), body.WakeTime)
		if errors.Is(err, service.ErrNoOpenRecord) {
			HandleError(c, app.Logger(), err, 404, "Nothing to wake from")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to wake up")
			return
		}

		app.Annotations().Dispatch(*rec)
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

// PutRecord is the manual edit: both times at once, for any date, landing
// the record complete. Fills in missed days and corrects finished ones.
func PutRecord(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		date := c.Param("date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid date")
			return
		}

		var body service.ManualEditRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateManualEditRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec, err := service.ManualEdit(c.Request.Context(), app.Records(), user, date, body.BedTime, body.WakeTime)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save record")
			return
		}

		app.Annotations().Dispatch(*rec)
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

// GetRecords lists the caller's records, newest first.
func GetRecords(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		recs, err := app.Records().ListRecords(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch records")
			return
		}
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Date > recs[j].Date
		})
		HandleSuccess(c, app.Logger(), recs, nil)
	}
}

// GetToday returns the latest-for-today record (falling back to the most
// recent known day) plus the rolling weekly summary line.
func GetToday(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		view, err := service.Today(c.Request.Context(), app.Records(), user.ID, today())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch today")
			return
		}
		HandleSuccess(c, app.Logger(), view.Record, map[string]any{"summary": view.Summary})
	}
}

// GetInsight returns the last cached annotator analysis. Before any record
// has completed, the fixed fallback for a fresh complete record is served.
func GetInsight(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		last := app.Annotations().Last()
		if last == nil {
			last = annotate.Fallback(record.Record{Status: record.StatusComplete})
		}
		HandleSuccess(c, app.Logger(), last, nil)
	}
}
