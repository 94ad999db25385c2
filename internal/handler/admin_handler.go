package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/0xj4an-Work/landing-latam/internal/config"
	"github.com/0xj4an-Work/landing-latam/internal/logic"
	"github.com/0xj4an-Work/landing-latam/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	adminLogic  *logic.AdminLogic
	exportLogic *logic.ExportLogic
	adminCfg    config.AdminConfig
}

func NewAdminHandler(db *gorm.DB, adminCfg config.AdminConfig) *AdminHandler {
	return &AdminHandler{
		adminLogic:  logic.NewAdminLogic(db),
		exportLogic: logic.NewExportLogic(db),
		adminCfg:    adminCfg,
	}
}

// CreateSession 签发管理会话令牌（请求本身已通过Basic鉴权）
func (h *AdminHandler) CreateSession(c *gin.Context) {
	token, err := middleware.IssueSession(h.adminCfg)
	if err != nil {
		handleError(c, err, "Failed to create session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetTeams 管理后台队伍聚合视图：LATAM统计、提交状态及国家过滤
func (h *AdminHandler) GetTeams(c *gin.Context) {
	teams, err := h.adminLogic.ListTeams()
	if err != nil {
		handleError(c, err, "Failed to fetch teams")
		return
	}

	// 汇总数基于全量队伍，与过滤条件无关
	submitted := 0
	for _, t := range teams {
		if t.Submission != nil {
			submitted++
		}
	}

	// 每个国家至少有一名成员的队伍数
	countryTeamCounts := make(map[string]int)
	for _, t := range teams {
		seen := make(map[string]bool)
		for _, m := range t.Members {
			if m.Country != "" && !seen[m.Country] {
				seen[m.Country] = true
				countryTeamCounts[m.Country]++
			}
		}
	}

	filter := logic.TeamFilter{
		Submission: c.DefaultQuery("submission", logic.SubmissionFilterAll),
		Country:    c.Query("country"),
	}
	filtered := logic.FilterTeams(teams, filter)

	c.JSON(http.StatusOK, gin.H{
		"teams":             ToAdminTeamResponses(filtered),
		"total":             len(teams),
		"submitted":         submitted,
		"notSubmitted":      len(teams) - submitted,
		"countryTeamCounts": countryTeamCounts,
	})
}

// ExportEmails 导出报名CSV。GET导出全部字段，POST按fields选择字段子集。
func (h *AdminHandler) ExportEmails(c *gin.Context) {
	var fieldIDs []string
	if c.Request.Method == http.MethodPost {
		var req ExportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
		fieldIDs = req.Fields
	}

	csv, err := h.exportLogic.ExportCSV(fieldIDs)
	if err != nil {
		handleError(c, err, "Failed to export emails")
		return
	}

	filename := fmt.Sprintf("buildathon-emails-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
