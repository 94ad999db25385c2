package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Milestone 项目里程碑，按 (项目, 类型) 唯一
type Milestone struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectID     string        `json:"projectId" gorm:"not null;uniqueIndex:idx_project_milestone_type"`
	MilestoneType MilestoneType `json:"milestoneType" gorm:"not null;uniqueIndex:idx_project_milestone_type"`

	// 各类型的可选字段，upsert时整体覆盖
	ContractAddress string `json:"contractAddress"`
	KarmaGapLink    string `json:"karmaGapLink"`
	FarcasterLink   string `json:"farcasterLink"`
	SlidesLink      string `json:"slidesLink"`
	PitchDeckLink   string `json:"pitchDeckLink"`

	// 关联
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate 创建前生成UUID主键
func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MilestoneType 里程碑类型
type MilestoneType string

const (
	MilestoneTypeRegistration    MilestoneType = "REGISTRATION"
	MilestoneTypeTestnet         MilestoneType = "TESTNET"
	MilestoneTypeKarmaGap        MilestoneType = "KARMA_GAP"
	MilestoneTypeMainnet         MilestoneType = "MAINNET"
	MilestoneTypeFarcaster       MilestoneType = "FARCASTER"
	MilestoneTypeFinalSubmission MilestoneType = "FINAL_SUBMISSION"
)

// milestoneTypeNames 请求参数到内部类型的映射表
var milestoneTypeNames = map[string]MilestoneType{
	"registration":     MilestoneTypeRegistration,
	"testnet":          MilestoneTypeTestnet,
	"karma-gap":        MilestoneTypeKarmaGap,
	"mainnet":          MilestoneTypeMainnet,
	"farcaster":        MilestoneTypeFarcaster,
	"final-submission": MilestoneTypeFinalSubmission,
}

// ParseMilestoneType 解析请求中的里程碑类型，未知类型返回false
func ParseMilestoneType(name string) (MilestoneType, bool) {
	t, ok := milestoneTypeNames[name]
	return t, ok
}

// RequiresContract 该类型是否要求合约地址（链上里程碑）
func (t MilestoneType) RequiresContract() bool {
	return t == MilestoneTypeTestnet || t == MilestoneTypeMainnet
}
