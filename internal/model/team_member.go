package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember 队伍成员
type TeamMember struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TeamID       string `json:"teamId" gorm:"not null;index"`
	MemberName   string `json:"memberName" gorm:"not null"`
	MemberEmail  string `json:"memberEmail" gorm:"not null;uniqueIndex"` // 全局唯一
	MemberGithub string `json:"memberGithub"`
	Country      string `json:"country"` // 自由文本，用于LATAM资格统计

	// 关联
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// BeforeCreate 创建前生成UUID主键
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
