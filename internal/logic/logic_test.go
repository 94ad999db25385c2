package logic

import (
	"path/filepath"
	"testing"

	"github.com/0xj4an-Work/landing-latam/internal/database"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// newTestDB 为每个测试创建独立的sqlite数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// validWallet 测试用钱包地址
const validWallet = "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"

// registerTeam 创建一支两人队伍，返回其ID
func registerTeam(t *testing.T, db *gorm.DB, teamName, emailPrefix string) string {
	t.Helper()

	team, err := NewTeamLogic(db).Register(&RegisterTeamInput{
		TeamName:      teamName,
		WalletAddress: validWallet,
		Members: []RegisterMemberInput{
			{MemberName: "Ana", MemberEmail: emailPrefix + ".ana@example.com", Country: "Mexico"},
			{MemberName: "Luis", MemberEmail: emailPrefix + ".luis@example.com", Country: "Colombia"},
		},
	})
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", teamName, err)
	}
	return team.ID
}
