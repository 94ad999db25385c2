package handler

import (
	"net/http"

	"github.com/0xj4an-Work/landing-latam/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamHandler struct {
	teamLogic *logic.TeamLogic
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{
		teamLogic: logic.NewTeamLogic(db),
	}
}

// Register 队伍报名
func (h *TeamHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	input := logic.RegisterTeamInput{
		TeamName:      req.TeamName,
		WalletAddress: req.WalletAddress,
	}
	for _, m := range req.Members {
		input.Members = append(input.Members, logic.RegisterMemberInput{
			MemberName:   m.MemberName,
			MemberEmail:  m.MemberEmail,
			MemberGithub: m.MemberGithub,
			Country:      m.Country,
		})
	}

	team, err := h.teamLogic.Register(&input)
	if err != nil {
		handleError(c, err, "Failed to save registration. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "teamId": team.ID})
}

// GetTeams 获取队伍列表（仅id与名称，供下拉选择）
func (h *TeamHandler) GetTeams(c *gin.Context) {
	teams, err := h.teamLogic.GetTeams()
	if err != nil {
		handleError(c, err, "Failed to fetch teams")
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": ToTeamListItems(teams)})
}

// GetRegistrations 获取完整报名数据
func (h *TeamHandler) GetRegistrations(c *gin.Context) {
	registrations, err := h.teamLogic.GetRegistrations()
	if err != nil {
		handleError(c, err, "Failed to fetch registrations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(registrations),
		"registrations": registrations,
	})
}

// DeleteTeam 删除队伍及其全部从属数据
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID := c.Query("teamId")
	if teamID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Team ID is required"})
		return
	}

	if err := h.teamLogic.DeleteTeam(teamID); err != nil {
		handleError(c, err, "Failed to delete team")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
