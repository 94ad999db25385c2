package handler

import (
	"net/http"

	"github.com/0xj4an-Work/landing-latam/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubmissionHandler struct {
	submissionLogic *logic.SubmissionLogic
}

func NewSubmissionHandler(db *gorm.DB) *SubmissionHandler {
	return &SubmissionHandler{
		submissionLogic: logic.NewSubmissionLogic(db),
	}
}

// Submit 最终提交（重复提交为原地更新）
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	submission, err := h.submissionLogic.Upsert(&logic.SubmitInput{
		TeamID:                req.TeamID,
		KarmaGapLink:          req.KarmaGapLink,
		TrackOpenTrack:        req.TrackOpenTrack,
		TrackFarcasterMiniapp: req.TrackFarcasterMiniapp,
		TrackSelf:             req.TrackSelf,
		TrackV0:               req.TrackV0,
	})
	if err != nil {
		handleError(c, err, "Failed to save submission. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "submissionId": submission.ID})
}
