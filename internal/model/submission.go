package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission 最终提交，每支队伍至多一条
type Submission struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TeamID       string `json:"teamId" gorm:"not null;uniqueIndex"`
	KarmaGapLink string `json:"karmaGapLink" gorm:"not null"`

	// 赛道选择，提交时至少一个为true
	TrackOpenTrack        bool `json:"trackOpenTrack"`
	TrackFarcasterMiniapp bool `json:"trackFarcasterMiniapp"`
	TrackSelf             bool `json:"trackSelf"`
	TrackV0               bool `json:"trackV0"`
}

// BeforeCreate 创建前生成UUID主键
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// TrackDef 赛道定义
type TrackDef struct {
	Name     string
	Label    string
	Selected func(*Submission) bool
}

// Tracks 赛道注册表，新增赛道只需在此追加一行
var Tracks = []TrackDef{
	{Name: "trackOpenTrack", Label: "Open Track", Selected: func(s *Submission) bool { return s.TrackOpenTrack }},
	{Name: "trackFarcasterMiniapp", Label: "Farcaster Miniapp", Selected: func(s *Submission) bool { return s.TrackFarcasterMiniapp }},
	{Name: "trackSelf", Label: "Self", Selected: func(s *Submission) bool { return s.TrackSelf }},
	{Name: "trackV0", Label: "V0", Selected: func(s *Submission) bool { return s.TrackV0 }},
}

// SelectedTracks 已选赛道的标签列表
func (s *Submission) SelectedTracks() []string {
	var labels []string
	for _, t := range Tracks {
		if t.Selected(s) {
			labels = append(labels, t.Label)
		}
	}
	return labels
}

// HasTrack 是否至少选择了一个赛道
func (s *Submission) HasTrack() bool {
	for _, t := range Tracks {
		if t.Selected(s) {
			return true
		}
	}
	return false
}
