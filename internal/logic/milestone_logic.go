package logic

import (
	"errors"
	"strings"

	"github.com/0xj4an-Work/landing-latam/internal/ethereum"
	"github.com/0xj4an-Work/landing-latam/internal/model"
	"gorm.io/gorm"
)

// MilestoneLogic 里程碑业务逻辑
type MilestoneLogic struct {
	db *gorm.DB
}

// NewMilestoneLogic 创建里程碑业务逻辑
func NewMilestoneLogic(db *gorm.DB) *MilestoneLogic {
	return &MilestoneLogic{db: db}
}

// MilestoneInput 里程碑提交数据
type MilestoneInput struct {
	ProjectID     string
	MilestoneType string

	ContractAddress string
	KarmaGapLink    string
	FarcasterLink   string
	SlidesLink      string
	PitchDeckLink   string
}

// Upsert 按 (项目, 类型) 创建或整体覆盖里程碑
// 注意：各里程碑类型之间没有先后依赖（final-submission 可先于 testnet 提交）
func (l *MilestoneLogic) Upsert(input *MilestoneInput) (*model.Milestone, error) {
	projectID := strings.TrimSpace(input.ProjectID)
	typeName := strings.TrimSpace(input.MilestoneType)
	if projectID == "" || typeName == "" {
		return nil, NewValidationError("Project ID and milestone type are required")
	}

	milestoneType, ok := model.ParseMilestoneType(typeName)
	if !ok {
		return nil, ErrInvalidMilestoneType
	}

	// 链上里程碑必须给出合法且非全零的合约地址（Celo为EVM地址）
	if milestoneType.RequiresContract() && !ethereum.IsValidAddress(input.ContractAddress) {
		if milestoneType == model.MilestoneTypeTestnet {
			return nil, NewValidationError("Please provide a valid Celo testnet contract address (0x + 40 hex characters).")
		}
		return nil, NewValidationError("Please provide a valid Celo mainnet contract address (0x + 40 hex characters).")
	}

	// 检查项目是否存在
	var project model.Project
	if err := l.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	var milestone model.Milestone
	err := l.db.Where("project_id = ? AND milestone_type = ?", projectID, milestoneType).First(&milestone).Error
	switch {
	case err == nil:
		// 已存在则整体覆盖字段
		l.apply(&milestone, input)
		if err := l.db.Save(&milestone).Error; err != nil {
			return nil, err
		}
		return &milestone, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		milestone = model.Milestone{
			ProjectID:     projectID,
			MilestoneType: milestoneType,
		}
		l.apply(&milestone, input)
		if err := l.db.Create(&milestone).Error; err != nil {
			// 并发写同一组合键时落在唯一索引上，改为覆盖已有记录
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return l.Upsert(input)
			}
			return nil, err
		}
		return &milestone, nil

	default:
		return nil, err
	}
}

// apply 用提交数据覆盖可选字段
func (l *MilestoneLogic) apply(m *model.Milestone, input *MilestoneInput) {
	m.ContractAddress = strings.TrimSpace(input.ContractAddress)
	m.KarmaGapLink = strings.TrimSpace(input.KarmaGapLink)
	m.FarcasterLink = strings.TrimSpace(input.FarcasterLink)
	m.SlidesLink = strings.TrimSpace(input.SlidesLink)
	m.PitchDeckLink = strings.TrimSpace(input.PitchDeckLink)
}

// GetProjectMilestones 获取项目的里程碑提交（按创建时间倒序）
func (l *MilestoneLogic) GetProjectMilestones(projectID string) ([]model.Milestone, error) {
	var milestones []model.Milestone
	if err := l.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}
