package controllers

import (
	"fmt"
	"net/http"

	"github.com/OtaoDavis/Tfit-app/models"
	"github.com/OtaoDavis/Tfit-app/services"
	"github.com/OtaoDavis/Tfit-app/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Tracker *services.TrackerService
	History *services.HistoryService
	Scan    *services.ScanService
}

func NewMealController(tr *services.TrackerService, hist *services.HistoryService, scan *services.ScanService) *MealController {
	return &MealController{Tracker: tr, History: hist, Scan: scan}
}

type logMealReq struct {
	Date        string `json:"date"` // optional YYYY-MM-DD, defaults to today
	Slot        string `json:"slot" binding:"required"`
	Note        string `json:"note"`
	PhotoBase64 string `json:"photo_base64"` // data URL from the capture flow
}

// POST /trackers/meals: the tail end of the capture pipeline: store the
// photo, estimate nutrition, write the diary slot. Logging into an
// occupied slot replaces it.
func (mc *MealController) LogMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var req logMealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot := models.MealSlot(req.Slot)
	if !models.ValidMealSlot(slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown meal slot %q", req.Slot)})
		return
	}

	var photoRef string
	if req.PhotoBase64 != "" {
		url, err := utils.UploadBase64Image(req.PhotoBase64, "meal-photos", fmt.Sprintf("user-%d", uid))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "photo upload failed", "detail": err.Error()})
			return
		}
		photoRef = url
	}

	scan := mc.Scan.Estimate(slot)
	entry := models.MealEntry{
		Name:     scan.Name,
		PhotoRef: photoRef,
		Note:     req.Note,
		Calories: scan.Calories,
		Protein:  scan.Protein,
		Carbs:    scan.Carbs,
		Fat:      scan.Fat,
	}

	rec, err := mc.Tracker.LogMeal(uid, req.Date, slot, entry)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"record": rec})
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case services.IsPersistence(err):
		c.JSON(http.StatusCreated, gin.H{
			"record":  rec,
			"warning": "your meal was saved for this session but could not be written to storage",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GET /trackers/meals/slots: the fixed slot set for the log dialog.
func (mc *MealController) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": models.MealSlots})
}

// DELETE /trackers/meals/:date/:slot
func (mc *MealController) DeleteMeal(c *gin.Context) {
	uid := c.GetUint("userID")
	date := c.Param("date")
	slot := models.MealSlot(c.Param("slot"))

	err := mc.Tracker.DeleteMeal(uid, date, slot)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case services.IsPersistence(err):
		c.JSON(http.StatusOK, gin.H{"warning": "deletion applied for this session but could not be written to storage"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
