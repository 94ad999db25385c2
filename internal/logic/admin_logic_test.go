package logic

import (
	"math"
	"testing"

	"github.com/0xj4an-Work/landing-latam/internal/model"
)

func TestComputeLatamStats(t *testing.T) {
	cases := []struct {
		name       string
		countries  []string
		latamCount int
		percentage float64
		meets      bool
	}{
		{"mixed below threshold", []string{"Mexico", NonLatamCountry, ""}, 1, 100.0 / 3, false},
		{"exactly half", []string{"Mexico", NonLatamCountry}, 1, 50, false},
		{"majority latam", []string{"Mexico", "Colombia", NonLatamCountry}, 2, 200.0 / 3, true},
		{"all latam", []string{"Argentina"}, 1, 100, true},
		{"no members", nil, 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			members := make([]model.TeamMember, len(tc.countries))
			for i, c := range tc.countries {
				members[i] = model.TeamMember{Country: c}
			}

			stats := ComputeLatamStats(members)
			if stats.LatamCount != tc.latamCount {
				t.Errorf("LatamCount = %d, want %d", stats.LatamCount, tc.latamCount)
			}
			if stats.TotalCount != len(tc.countries) {
				t.Errorf("TotalCount = %d, want %d", stats.TotalCount, len(tc.countries))
			}
			if math.Abs(stats.Percentage-tc.percentage) > 1e-9 {
				t.Errorf("Percentage = %v, want %v", stats.Percentage, tc.percentage)
			}
			if stats.MeetsLatam != tc.meets {
				t.Errorf("MeetsLatam = %v, want %v", stats.MeetsLatam, tc.meets)
			}
		})
	}
}

func TestFilterTeams(t *testing.T) {
	submitted := model.Team{
		ID:         "t1",
		Submission: &model.Submission{},
		Members:    []model.TeamMember{{Country: "Mexico"}},
	}
	notSubmitted := model.Team{
		ID:      "t2",
		Members: []model.TeamMember{{Country: "Colombia"}},
	}
	teams := []model.Team{submitted, notSubmitted}

	cases := []struct {
		name   string
		filter TeamFilter
		want   []string
	}{
		{"all", TeamFilter{Submission: SubmissionFilterAll}, []string{"t1", "t2"}},
		{"submitted", TeamFilter{Submission: SubmissionFilterSubmitted}, []string{"t1"}},
		{"not submitted", TeamFilter{Submission: SubmissionFilterNotSubmitted}, []string{"t2"}},
		{"country match", TeamFilter{Submission: SubmissionFilterAll, Country: "Colombia"}, []string{"t2"}},
		{"country all", TeamFilter{Submission: SubmissionFilterAll, Country: "all"}, []string{"t1", "t2"}},
		{"country no match", TeamFilter{Submission: SubmissionFilterAll, Country: "Chile"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterTeams(teams, tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("FilterTeams returned %d teams, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("team[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestListTeamsPreloadsRelations(t *testing.T) {
	db := newTestDB(t)
	teamID := registerTeam(t, db, "Equipo", "team1")

	if _, err := NewSubmissionLogic(db).Upsert(&SubmitInput{
		TeamID:         teamID,
		KarmaGapLink:   "https://gap.karmahq.xyz/project/pagos",
		TrackOpenTrack: true,
	}); err != nil {
		t.Fatalf("Upsert submission failed: %v", err)
	}

	teams, err := NewAdminLogic(db).ListTeams()
	if err != nil {
		t.Fatalf("ListTeams failed: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("ListTeams returned %d teams, want 1", len(teams))
	}
	if len(teams[0].Members) != 2 {
		t.Errorf("members = %d, want 2", len(teams[0].Members))
	}
	if teams[0].Submission == nil {
		t.Error("submission not preloaded")
	}
}
