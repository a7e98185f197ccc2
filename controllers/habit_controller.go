package controllers

import (
	"net/http"

	"github.com/OtaoDavis/Tfit-app/services"
	"github.com/OtaoDavis/Tfit-app/utils"

	"github.com/gin-gonic/gin"
)

type HabitController struct {
	Habits *services.HabitService
}

func NewHabitController(hs *services.HabitService) *HabitController {
	return &HabitController{Habits: hs}
}

// GET /habits: the checklist definition plus today's state.
func (hc *HabitController) GetHabits(c *gin.Context) {
	uid := c.GetUint("userID")

	today, err := hc.Habits.Day(uid, utils.TodayKey())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"habits": services.Habits,
		"today":  today,
	})
}

// GET /habits/day/:date
func (hc *HabitController) GetDay(c *gin.Context) {
	uid := c.GetUint("userID")

	day, err := hc.Habits.Day(uid, c.Param("date"))
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": c.Param("date"), "checked": day})
}

// POST /habits/toggle
func (hc *HabitController) Toggle(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Date    string `json:"date"` // defaults to today
		HabitID string `json:"habit_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checked, err := hc.Habits.Toggle(uid, body.Date, body.HabitID)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checked": checked})
}

// GET /habits/history
func (hc *HabitController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := hc.Habits.History(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": logs})
}
