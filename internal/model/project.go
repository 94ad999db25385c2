package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project 参赛项目
type Project struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TeamID      string `json:"teamId" gorm:"not null;index"`
	ProjectName string `json:"projectName" gorm:"not null"`
	GithubRepo  string `json:"githubRepo" gorm:"not null"`

	// 关联
	Team       Team        `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Milestones []Milestone `json:"milestones,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate 创建前生成UUID主键
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
