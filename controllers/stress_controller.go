package controllers

import (
	"net/http"

	"github.com/OtaoDavis/Tfit-app/services"

	"github.com/gin-gonic/gin"
)

type StressController struct {
	Stress *services.StressService
}

func NewStressController(ss *services.StressService) *StressController {
	return &StressController{Stress: ss}
}

// POST /stress
func (sc *StressController) Log(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Level string `json:"level" binding:"required"`
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := sc.Stress.Log(uid, body.Level, body.Notes)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /stress
func (sc *StressController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := sc.Stress.List(uid, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"logs":      logs,
		"daily_tip": sc.Stress.DailyTip(),
	})
}
