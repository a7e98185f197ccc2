package controllers

import (
	"fmt"
	"net/http"

	"github.com/OtaoDavis/Tfit-app/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	Folder      string `json:"folder"`
}

func UploadImage(c *gin.Context) {
	uid := c.GetUint("userID")

	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "general"
	}

	url, err := utils.UploadBase64Image(req.ImageBase64, folder, fmt.Sprintf("user-%d", uid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
