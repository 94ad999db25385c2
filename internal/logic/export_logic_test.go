package logic

import (
	"strings"
	"testing"
	"time"

	"github.com/0xj4an-Work/landing-latam/internal/model"
)

func TestResolveExportFields(t *testing.T) {
	// 空列表返回全部字段
	all, err := ResolveExportFields(nil)
	if err != nil {
		t.Fatalf("ResolveExportFields(nil) failed: %v", err)
	}
	if len(all) != len(ExportFields) {
		t.Errorf("default fields = %d, want %d", len(all), len(ExportFields))
	}

	// 结果保持注册表顺序，与请求顺序无关
	fields, err := ResolveExportFields([]string{"memberEmail", "teamName"})
	if err != nil {
		t.Fatalf("ResolveExportFields failed: %v", err)
	}
	if len(fields) != 2 || fields[0].ID != "teamName" || fields[1].ID != "memberEmail" {
		t.Errorf("fields out of registry order: %+v", fields)
	}

	if _, err := ResolveExportFields([]string{"teamName", "favoriteColor"}); !IsValidationError(err) {
		t.Errorf("unknown field error = %v, want validation error", err)
	}
}

func TestBuildCSV(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	team := model.Team{
		TeamName:      `Los "Cracks"`,
		WalletAddress: validWallet,
		CreatedAt:     createdAt,
		Members: []model.TeamMember{
			{MemberName: "Ana", MemberEmail: "ana@example.com", Country: "Mexico"},
			{MemberName: "Luis", MemberEmail: "luis@example.com"},
		},
		Submission: &model.Submission{
			KarmaGapLink:   "https://gap.karmahq.xyz/project/pagos",
			TrackOpenTrack: true,
			TrackV0:        true,
		},
	}

	fields, err := ResolveExportFields([]string{"teamName", "memberEmail"})
	if err != nil {
		t.Fatalf("ResolveExportFields failed: %v", err)
	}

	csv := BuildCSV([]model.Team{team}, fields)
	lines := strings.Split(csv, "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want header + 2 data rows:\n%s", len(lines), csv)
	}
	if lines[0] != "Team Name,Email" {
		t.Errorf("header = %q", lines[0])
	}
	// 每个单元格都加引号，内部引号加倍；两行共享队伍名，邮箱不同
	if lines[1] != `"Los ""Cracks""","ana@example.com"` {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != `"Los ""Cracks""","luis@example.com"` {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestBuildCSVDerivedFields(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	team := model.Team{
		TeamName:      "Equipo",
		WalletAddress: validWallet,
		CreatedAt:     createdAt,
		Members: []model.TeamMember{
			{MemberName: "Ana", MemberEmail: "ana@example.com"},
		},
		Submission: &model.Submission{
			KarmaGapLink:   "https://gap.karmahq.xyz/project/pagos",
			TrackOpenTrack: true,
			TrackV0:        true,
		},
	}

	fields, err := ResolveExportFields([]string{"memberGithub", "registrationDate", "hasSubmission", "tracks"})
	if err != nil {
		t.Fatalf("ResolveExportFields failed: %v", err)
	}

	csv := BuildCSV([]model.Team{team}, fields)
	lines := strings.Split(csv, "\n")
	if len(lines) != 2 {
		t.Fatalf("csv has %d lines, want 2:\n%s", len(lines), csv)
	}
	// 可选字段为空时渲染为空字符串而不是null
	if lines[1] != `"","2026-03-14","yes","Open Track; V0"` {
		t.Errorf("data row = %q", lines[1])
	}

	// 未提交的队伍派生字段
	team.Submission = nil
	csv = BuildCSV([]model.Team{team}, fields)
	lines = strings.Split(csv, "\n")
	if lines[1] != `"","2026-03-14","no",""` {
		t.Errorf("data row without submission = %q", lines[1])
	}
}

func TestExportCSVFromStore(t *testing.T) {
	db := newTestDB(t)
	registerTeam(t, db, "Equipo", "team1")

	csv, err := NewExportLogic(db).ExportCSV([]string{"teamName", "memberEmail", "country"})
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	lines := strings.Split(csv, "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want header + one row per member:\n%s", len(lines), csv)
	}
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, `"Equipo",`) {
			t.Errorf("row does not repeat team fields: %q", line)
		}
	}
}
