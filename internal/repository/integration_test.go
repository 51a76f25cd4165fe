//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Balajicg5/cgpa-calculator-backend/internal/model"
	"github.com/Balajicg5/cgpa-calculator-backend/internal/repository"
	"github.com/Balajicg5/cgpa-calculator-backend/pkg/database"
)

// ═══════════════════════════════════════════════════════════
// PostgreSQL 集成测试（go test -tags integration ./...）
// ═══════════════════════════════════════════════════════════

func openPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=cgpa password=cgpa_password dbname=cgpa_test sslmode=disable TimeZone=UTC"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("无法连接测试数据库: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取 sql.DB 失败: %v", err)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	return db
}

func TestPostgres_SemesterLifecycle(t *testing.T) {
	db := openPostgres(t)
	repo := repository.NewRepository(db)
	ctx := context.Background()

	user := &model.User{
		Name:         "集成测试用户",
		Email:        fmt.Sprintf("it%d@example.com", time.Now().UnixNano()),
		PasswordHash: "$2a$10$placeholder",
	}
	if err := repo.User.Create(ctx, user); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	defer db.Unscoped().Where("user_id = ?", user.UserID).Delete(&model.User{})

	sem := &model.Semester{
		UserID: user.UserID,
		Number: 1,
		Courses: []model.Course{
			{Code: "CS101", Name: "程序设计", Credits: 3, Grade: 4.0},
			{Code: "MA101", Name: "高等数学", Credits: 4, Grade: 3.5},
		},
	}
	if err := repo.Semester.Create(ctx, sem); err != nil {
		t.Fatalf("创建学期失败: %v", err)
	}
	defer db.Unscoped().Where("semester_id = ?", sem.SemesterID).Delete(&model.Semester{})

	got, err := repo.Semester.GetByID(ctx, sem.SemesterID)
	if err != nil {
		t.Fatalf("GetByID 失败: %v", err)
	}
	if got.GPA != 3.71 {
		t.Errorf("期望 GPA=3.71，实际=%v", got.GPA)
	}

	got.Courses = got.Courses[:1]
	if err := repo.Semester.Update(ctx, got); err != nil {
		t.Fatalf("Update 失败: %v", err)
	}
	reloaded, _ := repo.Semester.GetByID(ctx, sem.SemesterID)
	if reloaded.GPA != 4 {
		t.Errorf("更新后期望 GPA=4，实际=%v", reloaded.GPA)
	}

	if err := repo.Semester.Delete(ctx, sem.SemesterID); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if _, err := repo.Semester.GetByID(ctx, sem.SemesterID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("删除后期望 ErrRecordNotFound，实际: %v", err)
	}
}
