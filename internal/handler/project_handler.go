package handler

import (
	"net/http"

	"github.com/0xj4an-Work/landing-latam/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectLogic: logic.NewProjectLogic(db),
	}
}

// GetProjects 获取项目列表，可按teamId过滤
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	teamID := c.Query("teamId")
	// 前端可能传来占位值，视同未过滤
	if teamID == "undefined" || teamID == "null" {
		teamID = ""
	}

	projects, err := h.projectLogic.GetProjects(teamID)
	if err != nil {
		handleError(c, err, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	project, err := h.projectLogic.CreateProject(&logic.CreateProjectInput{
		ProjectName: req.ProjectName,
		GithubRepo:  req.GithubRepo,
		TeamID:      req.TeamID,
	})
	if err != nil {
		handleError(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// DeleteProject 删除项目（连带其里程碑）
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
		return
	}

	if err := h.projectLogic.DeleteProject(projectID); err != nil {
		handleError(c, err, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
