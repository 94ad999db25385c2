package handler

import (
	"net/http"

	"github.com/0xj4an-Work/landing-latam/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MilestoneHandler struct {
	milestoneLogic *logic.MilestoneLogic
}

func NewMilestoneHandler(db *gorm.DB) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneLogic: logic.NewMilestoneLogic(db),
	}
}

// GetMilestones 获取项目的里程碑提交列表
func (h *MilestoneHandler) GetMilestones(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
		return
	}

	milestones, err := h.milestoneLogic.GetProjectMilestones(projectID)
	if err != nil {
		handleError(c, err, "Failed to fetch milestone submissions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": milestones})
}

// SubmitMilestone 创建或覆盖里程碑
func (h *MilestoneHandler) SubmitMilestone(c *gin.Context) {
	var req MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	milestone, err := h.milestoneLogic.Upsert(&logic.MilestoneInput{
		ProjectID:       req.ProjectID,
		MilestoneType:   req.MilestoneType,
		ContractAddress: req.ContractAddress,
		KarmaGapLink:    req.KarmaGapLink,
		FarcasterLink:   req.FarcasterLink,
		SlidesLink:      req.SlidesLink,
		PitchDeckLink:   req.PitchDeckLink,
	})
	if err != nil {
		handleError(c, err, "Failed to submit milestone")
		return
	}

	c.JSON(http.StatusOK, gin.H{"submission": milestone})
}
