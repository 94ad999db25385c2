package logic

import (
	"errors"
	"strings"

	"github.com/0xj4an-Work/landing-latam/internal/ethereum"
	"github.com/0xj4an-Work/landing-latam/internal/model"
	"gorm.io/gorm"
)

// TeamLogic 队伍业务逻辑
type TeamLogic struct {
	db *gorm.DB
}

// NewTeamLogic 创建队伍业务逻辑
func NewTeamLogic(db *gorm.DB) *TeamLogic {
	return &TeamLogic{db: db}
}

// RegisterMemberInput 报名成员数据
type RegisterMemberInput struct {
	MemberName   string
	MemberEmail  string
	MemberGithub string
	Country      string
}

// RegisterTeamInput 报名数据
type RegisterTeamInput struct {
	TeamName      string
	WalletAddress string
	Members       []RegisterMemberInput
}

// Register 创建队伍及成员，同一事务写入
func (l *TeamLogic) Register(input *RegisterTeamInput) (*model.Team, error) {
	teamName := strings.TrimSpace(input.TeamName)
	if teamName == "" {
		return nil, NewValidationError("Team name is required")
	}

	wallet := strings.TrimSpace(input.WalletAddress)
	if !ethereum.IsValidAddress(wallet) {
		return nil, NewValidationError("A valid wallet address is required (0x + 40 hex characters)")
	}

	if len(input.Members) == 0 {
		return nil, NewValidationError("At least one team member is required")
	}

	// 清洗成员数据，丢弃没有姓名的成员
	members := make([]model.TeamMember, 0, len(input.Members))
	seen := make(map[string]bool)
	for _, m := range input.Members {
		name := strings.TrimSpace(m.MemberName)
		if name == "" {
			continue
		}

		email := strings.TrimSpace(m.MemberEmail)
		if email == "" {
			return nil, NewValidationError("Each team member must have an email address")
		}
		if !IsValidEmail(email) {
			return nil, NewValidationError("Invalid email address: %s", email)
		}

		country := strings.TrimSpace(m.Country)
		if country == "" {
			return nil, NewValidationError("Each team member must have a country")
		}

		// 同一请求内的重复邮箱直接拒绝
		key := strings.ToLower(email)
		if seen[key] {
			return nil, ErrDuplicateEmail
		}
		seen[key] = true

		members = append(members, model.TeamMember{
			MemberName:   name,
			MemberEmail:  email,
			MemberGithub: strings.TrimSpace(m.MemberGithub),
			Country:      country,
		})
	}

	if len(members) == 0 {
		return nil, NewValidationError("At least one team member with a name is required")
	}

	// 预检邮箱是否已被其它队伍注册，唯一索引兜底并发场景
	emails := make([]string, len(members))
	for i, m := range members {
		emails[i] = m.MemberEmail
	}
	var count int64
	if err := l.db.Model(&model.TeamMember{}).Where("member_email IN ?", emails).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	team := &model.Team{
		TeamName:      teamName,
		WalletAddress: wallet,
		Members:       members,
	}
	if err := l.db.Create(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return team, nil
}

// GetTeams 获取队伍列表（按报名时间倒序）
func (l *TeamLogic) GetTeams() ([]model.Team, error) {
	var teams []model.Team
	if err := l.db.Order("created_at DESC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// GetRegistrations 获取完整报名数据（成员、项目及里程碑、提交）
func (l *TeamLogic) GetRegistrations() ([]model.Team, error) {
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

// DeleteTeam 删除队伍及其所有从属数据，同一事务内完成避免孤儿行
func (l *TeamLogic) DeleteTeam(teamID string) error {
	var team model.Team
	if err := l.db.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
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

	var projectIDs []string
	if err := tx.Model(&model.Project{}).Where("team_id = ?", teamID).Pluck("id", &projectIDs).Error; err != nil {
		tx.Rollback()
		return err
	}

	if len(projectIDs) > 0 {
		if err := tx.Where("project_id IN ?", projectIDs).Delete(&model.Milestone{}).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Where("team_id = ?", teamID).Delete(&model.Project{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("team_id = ?", teamID).Delete(&model.TeamMember{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("team_id = ?", teamID).Delete(&model.Submission{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&team).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
