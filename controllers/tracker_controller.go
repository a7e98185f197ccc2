package controllers

import (
	"errors"
	"net/http"

	"github.com/OtaoDavis/Tfit-app/models"
	"github.com/OtaoDavis/Tfit-app/services"
	"github.com/OtaoDavis/Tfit-app/utils"

	"github.com/gin-gonic/gin"
)

type TrackerController struct {
	Tracker *services.TrackerService
	History *services.HistoryService
	Prefs   *services.GoalPrefs
}

func NewTrackerController(tr *services.TrackerService, hist *services.HistoryService, prefs *services.GoalPrefs) *TrackerController {
	return &TrackerController{Tracker: tr, History: hist, Prefs: prefs}
}

func parseKind(s string) (models.MetricKind, bool) {
	switch models.MetricKind(s) {
	case models.MetricWater, models.MetricSleep, models.MetricSteps, models.MetricMeals:
		return models.MetricKind(s), true
	}
	return "", false
}

// recordProgress attaches the capped percent-of-goal for display.
func recordProgress(kind models.MetricKind, rec *models.DailyRecord) gin.H {
	out := gin.H{"record": rec}
	switch kind {
	case models.MetricWater, models.MetricSteps:
		out["percent"] = services.PercentOfGoal(rec.Value.Cumulative(kind), rec.Goal)
	case models.MetricSleep:
		if rec.Value.Sleep != nil {
			out["percent"] = services.PercentOfGoal(rec.Value.Sleep.DurationMinutes, rec.Goal)
		}
	}
	return out
}

// respondRecord maps a tracker write result onto HTTP. Validation is a
// 400 with nothing written; a persistence failure still carries the
// updated record but adds an advisory warning.
func respondRecord(c *gin.Context, kind models.MetricKind, rec *models.DailyRecord, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, recordProgress(kind, rec))
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case services.IsPersistence(err):
		out := recordProgress(kind, rec)
		out["warning"] = "your entry was saved for this session but could not be written to storage"
		c.JSON(http.StatusOK, out)
	case errors.Is(err, services.ErrSensorUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "step tracking is not available on this device"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GET /trackers/:kind returns today's live record plus history (today excluded).
func (tc *TrackerController) GetTracker(c *gin.Context) {
	uid := c.GetUint("userID")
	kind, ok := parseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tracker kind"})
		return
	}

	today := tc.History.Today(uid, kind)
	history := tc.History.RecordsExcluding(uid, kind, today.Date)

	resp := recordProgress(kind, today)
	resp["goal"] = tc.Prefs.Goal(uid, kind)
	resp["history"] = history
	c.JSON(http.StatusOK, resp)
}

// PUT /trackers/:kind/goal
func (tc *TrackerController) SetGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	kind, ok := parseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tracker kind"})
		return
	}

	var body struct {
		Goal int `json:"goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := tc.Tracker.SetGoal(uid, kind, body.Goal); err != nil {
		if services.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if services.IsPersistence(err) {
			c.JSON(http.StatusOK, gin.H{"goal": body.Goal, "warning": "goal saved for this session but could not be written to storage"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": body.Goal})
}

// POST /trackers/water
func (tc *TrackerController) AddWater(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		DeltaMl int `json:"delta_ml" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := tc.Tracker.AddWater(uid, body.DeltaMl)
	respondRecord(c, models.MetricWater, rec, err)
}

// POST /trackers/sleep
func (tc *TrackerController) LogSleep(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		WakeDate string `json:"wake_date"` // defaults to today
		BedTime  string `json:"bed_time" binding:"required"`
		WakeTime string `json:"wake_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := tc.Tracker.LogSleep(uid, body.WakeDate, body.BedTime, body.WakeTime)
	respondRecord(c, models.MetricSleep, rec, err)
}

// POST /trackers/steps/readings ingests one cumulative pedometer callback.
func (tc *TrackerController) RecordSteps(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		CumulativeSteps *int `json:"cumulative_steps" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := tc.Tracker.RecordSteps(uid, *body.CumulativeSteps)
	respondRecord(c, models.MetricSteps, rec, err)
}

// POST /trackers/steps/session/end
func (tc *TrackerController) EndStepSession(c *gin.Context) {
	uid := c.GetUint("userID")
	tc.Tracker.EndStepSession(uid)
	c.Status(http.StatusNoContent)
}

// PUT /trackers/steps/sensor
func (tc *TrackerController) SetSensorAvailability(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tc.Tracker.SetStepSensorAvailability(uid, *body.Available)
	c.Status(http.StatusNoContent)
}

// GET /trackers/:kind/history: history view only, today excluded.
func (tc *TrackerController) GetHistory(c *gin.Context) {
	uid := c.GetUint("userID")
	kind, ok := parseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tracker kind"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"history": tc.History.RecordsExcluding(uid, kind, utils.TodayKey()),
	})
}
