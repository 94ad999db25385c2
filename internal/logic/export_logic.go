package logic

import (
	"strings"

	"github.com/0xj4an-Work/landing-latam/internal/model"
	"gorm.io/gorm"
)

// ExportField CSV导出字段，取值函数基于 (队伍, 成员) 对
type ExportField struct {
	ID    string
	Label string
	Value func(t *model.Team, m *model.TeamMember) string
}

// ExportFields 导出字段注册表（有序），新增字段只需追加一行
var ExportFields = []ExportField{
	{ID: "teamName", Label: "Team Name", Value: func(t *model.Team, m *model.TeamMember) string {
		return t.TeamName
	}},
	{ID: "memberName", Label: "Member Name", Value: func(t *model.Team, m *model.TeamMember) string {
		return m.MemberName
	}},
	{ID: "memberEmail", Label: "Email", Value: func(t *model.Team, m *model.TeamMember) string {
		return m.MemberEmail
	}},
	{ID: "memberGithub", Label: "GitHub", Value: func(t *model.Team, m *model.TeamMember) string {
		return m.MemberGithub
	}},
	{ID: "country", Label: "Country", Value: func(t *model.Team, m *model.TeamMember) string {
		return m.Country
	}},
	{ID: "walletAddress", Label: "Wallet Address", Value: func(t *model.Team, m *model.TeamMember) string {
		return t.WalletAddress
	}},
	{ID: "registrationDate", Label: "Registration Date", Value: func(t *model.Team, m *model.TeamMember) string {
		return t.CreatedAt.UTC().Format("2006-01-02")
	}},
	{ID: "hasSubmission", Label: "Has Submission", Value: func(t *model.Team, m *model.TeamMember) string {
		if t.Submission != nil {
			return "yes"
		}
		return "no"
	}},
	{ID: "karmaGapLink", Label: "Karma Gap Link", Value: func(t *model.Team, m *model.TeamMember) string {
		if t.Submission != nil {
			return t.Submission.KarmaGapLink
		}
		return ""
	}},
	{ID: "tracks", Label: "Tracks", Value: func(t *model.Team, m *model.TeamMember) string {
		if t.Submission != nil {
			return strings.Join(t.Submission.SelectedTracks(), "; ")
		}
		return ""
	}},
}

// ResolveExportFields 按标识符选择导出字段，保持注册表顺序；空列表返回全部
func ResolveExportFields(ids []string) ([]ExportField, error) {
	if len(ids) == 0 {
		return ExportFields, nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		known := false
		for _, f := range ExportFields {
			if f.ID == id {
				known = true
				break
			}
		}
		if !known {
			return nil, NewValidationError("Unknown export field: %s", id)
		}
		wanted[id] = true
	}

	fields := make([]ExportField, 0, len(wanted))
	for _, f := range ExportFields {
		if wanted[f.ID] {
			fields = append(fields, f)
		}
	}
	return fields, nil
}

// ExportLogic CSV导出逻辑
type ExportLogic struct {
	db *gorm.DB
}

// NewExportLogic 创建CSV导出逻辑
func NewExportLogic(db *gorm.DB) *ExportLogic {
	return &ExportLogic{db: db}
}

// ExportCSV 导出报名数据，每个 (队伍, 成员) 对一行
func (l *ExportLogic) ExportCSV(fieldIDs []string) (string, error) {
	fields, err := ResolveExportFields(fieldIDs)
	if err != nil {
		return "", err
	}

	var teams []model.Team
	if err := l.db.
		Preload("Members").
		Preload("Submission").
		Order("created_at DESC").
		Find(&teams).Error; err != nil {
		return "", err
	}

	return BuildCSV(teams, fields), nil
}

// BuildCSV 组装CSV文本：数据单元格全部加双引号，内部双引号转义为两个
func BuildCSV(teams []model.Team, fields []ExportField) string {
	var b strings.Builder

	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = f.Label
	}
	b.WriteString(strings.Join(headers, ","))

	for i := range teams {
		team := &teams[i]
		for j := range team.Members {
			member := &team.Members[j]
			cells := make([]string, len(fields))
			for k, f := range fields {
				cells[k] = csvCell(f.Value(team, member))
			}
			b.WriteString("\n")
			b.WriteString(strings.Join(cells, ","))
		}
	}

	return b.String()
}

// csvCell 空值渲染为空字符串而不是"null"
func csvCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
