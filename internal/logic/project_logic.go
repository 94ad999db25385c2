package logic

import (
	"errors"
	"strings"

	"github.com/0xj4an-Work/landing-latam/internal/model"
	"gorm.io/gorm"
)

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	db *gorm.DB
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(db *gorm.DB) *ProjectLogic {
	return &ProjectLogic{db: db}
}

// CreateProjectInput 创建项目数据
type CreateProjectInput struct {
	ProjectName string
	GithubRepo  string
	TeamID      string
}

// CreateProject 为队伍创建项目
func (l *ProjectLogic) CreateProject(input *CreateProjectInput) (*model.Project, error) {
	name := strings.TrimSpace(input.ProjectName)
	teamID := strings.TrimSpace(input.TeamID)
	repo := strings.TrimSpace(input.GithubRepo)

	if name == "" || teamID == "" {
		return nil, NewValidationError("Project name and team ID are required")
	}
	if repo == "" {
		return nil, NewValidationError("GitHub repository is required")
	}

	// 检查队伍是否存在
	var team model.Team
	if err := l.db.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	project := &model.Project{
		TeamID:      teamID,
		ProjectName: name,
		GithubRepo:  repo,
	}
	if err := l.db.Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// GetProjects 获取项目列表，teamID为空时返回全部
func (l *ProjectLogic) GetProjects(teamID string) ([]model.Project, error) {
	query := l.db.Order("created_at DESC")
	if teamID != "" {
		query = query.Where("team_id = ?", teamID)
	}

	var projects []model.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// DeleteProject 删除项目及其里程碑，同一事务内完成
func (l *ProjectLogic) DeleteProject(projectID string) error {
	var project model.Project
	if err := l.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	// 开始事务
	tx := l.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("project_id = ?", projectID).Delete(&model.Milestone{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&project).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
