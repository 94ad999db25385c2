package handler

import (
	"github.com/0xj4an-Work/landing-latam/internal/logic"
	"github.com/0xj4an-Work/landing-latam/internal/model"
)

// RegisterRequest 报名请求
type RegisterRequest struct {
	TeamName      string                  `json:"teamName"`
	WalletAddress string                  `json:"walletAddress"`
	Members       []RegisterMemberRequest `json:"members"`
}

// RegisterMemberRequest 报名成员
type RegisterMemberRequest struct {
	MemberName   string `json:"memberName"`
	MemberEmail  string `json:"memberEmail"`
	MemberGithub string `json:"memberGithub"`
	Country      string `json:"country"`
}

// SubmitRequest 最终提交请求
type SubmitRequest struct {
	TeamID       string `json:"teamId"`
	KarmaGapLink string `json:"karmaGapLink"`

	TrackOpenTrack        bool `json:"trackOpenTrack"`
	TrackFarcasterMiniapp bool `json:"trackFarcasterMiniapp"`
	TrackSelf             bool `json:"trackSelf"`
	TrackV0               bool `json:"trackV0"`
}

// MilestoneRequest 里程碑提交请求
type MilestoneRequest struct {
	ProjectID     string `json:"projectId"`
	MilestoneType string `json:"milestoneType"`

	ContractAddress string `json:"contractAddress"`
	KarmaGapLink    string `json:"karmaGapLink"`
	FarcasterLink   string `json:"farcasterLink"`
	SlidesLink      string `json:"slidesLink"`
	PitchDeckLink   string `json:"pitchDeckLink"`
}

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	ProjectName string `json:"projectName"`
	GithubRepo  string `json:"githubRepo"`
	TeamID      string `json:"teamId"`
}

// ExportRequest CSV导出字段选择
type ExportRequest struct {
	Fields []string `json:"fields"`
}

// TeamListItem 队伍下拉列表项
type TeamListItem struct {
	ID       string `json:"id"`
	TeamName string `json:"teamName"`
}

// ToTeamListItems 转换队伍列表
func ToTeamListItems(teams []model.Team) []TeamListItem {
	items := make([]TeamListItem, len(teams))
	for i, t := range teams {
		items[i] = TeamListItem{ID: t.ID, TeamName: t.TeamName}
	}
	return items
}

// AdminTeamResponse 管理后台队伍视图，附带LATAM统计
type AdminTeamResponse struct {
	model.Team
	Latam logic.LatamStats `json:"latam"`
}

// ToAdminTeamResponses 转换管理后台队伍列表
func ToAdminTeamResponses(teams []model.Team) []AdminTeamResponse {
	items := make([]AdminTeamResponse, len(teams))
	for i, t := range teams {
		items[i] = AdminTeamResponse{Team: t, Latam: logic.ComputeLatamStats(t.Members)}
	}
	return items
}
