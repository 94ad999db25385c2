package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team 参赛队伍
type Team struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TeamName      string `json:"teamName" gorm:"not null"`
	WalletAddress string `json:"walletAddress" gorm:"not null"` // EVM地址（0x + 40位十六进制）

	// 关联
	Members    []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Projects   []Project    `json:"projects,omitempty" gorm:"foreignKey:TeamID"`
	Submission *Submission  `json:"submission,omitempty" gorm:"foreignKey:TeamID"`
}

// BeforeCreate 创建前生成UUID主键
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
