package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Balajicg5/cgpa-calculator-backend/internal/model"
)

// SemesterRepository 学期数据访问接口
// Create / Update 在写库前统一重算 gpa，保证 courses 与 gpa 同行同语句落库
type SemesterRepository interface {
	Create(ctx context.Context, semester *model.Semester) error
	GetByID(ctx context.Context, id string) (*model.Semester, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Semester, error)
	Update(ctx context.Context, semester *model.Semester) error
	Delete(ctx context.Context, id string) error
}

type semesterRepo struct {
	db *gorm.DB
}

// NewSemesterRepo 创建 SemesterRepository 实例
func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) Create(ctx context.Context, semester *model.Semester) error {
	if semester.SemesterID == "" {
		semester.SemesterID = uuid.New().String()
	}
	if semester.Courses == nil {
		semester.Courses = []model.Course{}
	}
	semester.RecalculateGPA()
	return r.db.WithContext(ctx).Create(semester).Error
}

func (r *semesterRepo) GetByID(ctx context.Context, id string) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("semester_id = ?", id).
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("number ASC").
		Order("created_at ASC").
		Find(&semesters).Error
	return semesters, err
}

// Update 按主键整行更新 number、courses 与 gpa；只作用于未删除的记录
// 目标不存在或已软删除时返回 gorm.ErrRecordNotFound，不会插入新行
func (r *semesterRepo) Update(ctx context.Context, semester *model.Semester) error {
	if semester.SemesterID == "" {
		return gorm.ErrRecordNotFound
	}
	if semester.Courses == nil {
		semester.Courses = []model.Course{}
	}
	semester.RecalculateGPA()

	result := r.db.WithContext(ctx).
		Model(semester).
		Select("*").
		Omit("semester_id", "user_id", "created_at", "deleted_at").
		Updates(semester)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 软删除；目标不存在或已删除时返回 gorm.ErrRecordNotFound
func (r *semesterRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("semester_id = ?", id).
		Delete(&model.Semester{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
