package logic

import (
	"errors"
	"strings"

	"github.com/0xj4an-Work/landing-latam/internal/model"
	"gorm.io/gorm"
)

// SubmissionLogic 最终提交业务逻辑
type SubmissionLogic struct {
	db *gorm.DB
}

// NewSubmissionLogic 创建最终提交业务逻辑
func NewSubmissionLogic(db *gorm.DB) *SubmissionLogic {
	return &SubmissionLogic{db: db}
}

// SubmitInput 最终提交数据
type SubmitInput struct {
	TeamID       string
	KarmaGapLink string

	TrackOpenTrack        bool
	TrackFarcasterMiniapp bool
	TrackSelf             bool
	TrackV0               bool
}

// Upsert 按队伍创建或原地更新提交，重复提交不产生第二条记录
func (l *SubmissionLogic) Upsert(input *SubmitInput) (*model.Submission, error) {
	teamID := strings.TrimSpace(input.TeamID)
	if teamID == "" {
		return nil, NewValidationError("Team ID is required")
	}

	karmaGapLink := strings.TrimSpace(input.KarmaGapLink)
	if karmaGapLink == "" {
		return nil, NewValidationError("Karma Gap link is required")
	}
	if !IsValidURL(karmaGapLink) {
		return nil, NewValidationError("Invalid URL format")
	}

	// 至少选择一个赛道
	draft := model.Submission{
		TrackOpenTrack:        input.TrackOpenTrack,
		TrackFarcasterMiniapp: input.TrackFarcasterMiniapp,
		TrackSelf:             input.TrackSelf,
		TrackV0:               input.TrackV0,
	}
	if !draft.HasTrack() {
		return nil, NewValidationError("Please select at least one track for your project")
	}

	// 检查队伍是否存在
	var team model.Team
	if err := l.db.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	var submission model.Submission
	err := l.db.Where("team_id = ?", teamID).First(&submission).Error
	switch {
	case err == nil:
		l.apply(&submission, karmaGapLink, input)
		if err := l.db.Save(&submission).Error; err != nil {
			return nil, err
		}
		return &submission, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		submission = model.Submission{TeamID: teamID}
		l.apply(&submission, karmaGapLink, input)
		if err := l.db.Create(&submission).Error; err != nil {
			// 并发提交落在 team_id 唯一索引上，改为覆盖已有记录
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return l.Upsert(input)
			}
			return nil, err
		}
		return &submission, nil

	default:
		return nil, err
	}
}

// apply 用提交数据覆盖字段
func (l *SubmissionLogic) apply(s *model.Submission, karmaGapLink string, input *SubmitInput) {
	s.KarmaGapLink = karmaGapLink
	s.TrackOpenTrack = input.TrackOpenTrack
	s.TrackFarcasterMiniapp = input.TrackFarcasterMiniapp
	s.TrackSelf = input.TrackSelf
	s.TrackV0 = input.TrackV0
}
