package logic

import (
	"github.com/0xj4an-Work/landing-latam/internal/model"
	"gorm.io/gorm"
)

// NonLatamCountry 报名表单中表示非拉美国家的哨兵值
const NonLatamCountry = "Non Latin America Country"

// 提交状态过滤取值
const (
	SubmissionFilterAll          = "all"
	SubmissionFilterSubmitted    = "submitted"
	SubmissionFilterNotSubmitted = "not_submitted"
)

// AdminLogic 管理后台聚合逻辑
type AdminLogic struct {
	db *gorm.DB
}

// NewAdminLogic 创建管理后台聚合逻辑
func NewAdminLogic(db *gorm.DB) *AdminLogic {
	return &AdminLogic{db: db}
}

// LatamStats 队伍的LATAM资格统计
type LatamStats struct {
	LatamCount int     `json:"latamCount"`
	TotalCount int     `json:"totalCount"`
	Percentage float64 `json:"percentage"`
	MeetsLatam bool    `json:"meetsLatam"`
}

// ComputeLatamStats 计算LATAM资格：有国家且不等于哨兵值的成员占比须超过50%
func ComputeLatamStats(members []model.TeamMember) LatamStats {
	stats := LatamStats{TotalCount: len(members)}
	for _, m := range members {
		if m.Country != "" && m.Country != NonLatamCountry {
			stats.LatamCount++
		}
	}
	if stats.TotalCount > 0 {
		stats.Percentage = float64(stats.LatamCount) / float64(stats.TotalCount) * 100
	}
	stats.MeetsLatam = stats.Percentage > 50
	return stats
}

// TeamFilter 队伍列表过滤条件
type TeamFilter struct {
	Submission string // all / submitted / not_submitted
	Country    string // 空或"all"表示不过滤
}

// ListTeams 获取带成员、提交、项目的队伍列表（按报名时间倒序）
func (l *AdminLogic) ListTeams() ([]model.Team, error) {
	var teams []model.Team
	if err := l.db.
		Preload("Members").
		Preload("Projects.Milestones").
		Preload("Submission").
		Order("created_at DESC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// FilterTeams 按提交状态及国家过滤，国家条件命中任一成员即通过
func FilterTeams(teams []model.Team, filter TeamFilter) []model.Team {
	filtered := make([]model.Team, 0, len(teams))
	for _, team := range teams {
		if filter.Submission == SubmissionFilterSubmitted && team.Submission == nil {
			continue
		}
		if filter.Submission == SubmissionFilterNotSubmitted && team.Submission != nil {
			continue
		}

		if filter.Country != "" && filter.Country != "all" {
			match := false
			for _, m := range team.Members {
				if m.Country == filter.Country {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}

		filtered = append(filtered, team)
	}
	return filtered
}
