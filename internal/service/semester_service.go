package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Balajicg5/cgpa-calculator-backend/internal/dto"
	"github.com/Balajicg5/cgpa-calculator-backend/internal/model"
	"github.com/Balajicg5/cgpa-calculator-backend/internal/repository"
	"github.com/Balajicg5/cgpa-calculator-backend/pkg/gpa"
)

// ── 学期模块业务错误 ──

var (
	ErrSemesterNotFound = errors.New("semester not found")
	ErrCourseInvalid    = errors.New("invalid course")
)

// SemesterService 学期业务接口
// 所有方法都显式接收调用者 ID；单资源操作在读出记录后先做归属校验
type SemesterService interface {
	List(ctx context.Context, callerID string) ([]dto.SemesterResponse, error)
	GetByID(ctx context.Context, id, callerID string) (*dto.SemesterResponse, error)
	Create(ctx context.Context, req *dto.CreateSemesterRequest, callerID string) (*dto.SemesterResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSemesterRequest, callerID string) (*dto.SemesterResponse, error)
	Delete(ctx context.Context, id, callerID string) error
	CGPA(ctx context.Context, callerID string) (*dto.CGPAResponse, error)
}

type semesterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSemesterService 创建 SemesterService 实例
func NewSemesterService(repo *repository.Repository, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *semesterService) List(ctx context.Context, callerID string) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.ListByOwner(ctx, callerID)
	if err != nil {
		s.logger.Error("列出学期失败", zap.String("user_id", callerID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		result = append(result, *toSemesterResponse(&semesters[i]))
	}

	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *semesterService) GetByID(ctx context.Context, id, callerID string) (*dto.SemesterResponse, error) {
	semester, err := s.loadOwned(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	return toSemesterResponse(semester), nil
}

// ────────────────────── Create ──────────────────────

func (s *semesterService) Create(ctx context.Context, req *dto.CreateSemesterRequest, callerID string) (*dto.SemesterResponse, error) {
	courses, err := toCourses(req.Courses)
	if err != nil {
		return nil, err
	}

	semester := &model.Semester{
		UserID:  callerID,
		Number:  req.Number,
		Courses: courses,
	}

	if err := s.repo.Semester.Create(ctx, semester); err != nil {
		s.logger.Error("创建学期失败", zap.String("user_id", callerID), zap.Error(err))
		return nil, err
	}

	return toSemesterResponse(semester), nil
}

// ────────────────────── Update ──────────────────────

func (s *semesterService) Update(ctx context.Context, id string, req *dto.UpdateSemesterRequest, callerID string) (*dto.SemesterResponse, error) {
	semester, err := s.loadOwned(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		semester.Number = *req.Number
	}
	if req.Courses != nil {
		courses, err := toCourses(*req.Courses)
		if err != nil {
			return nil, err
		}
		semester.Courses = courses
	}

	if err := s.repo.Semester.Update(ctx, semester); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("更新学期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toSemesterResponse(semester), nil
}

// ────────────────────── Delete ──────────────────────

func (s *semesterService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.loadOwned(ctx, id, callerID); err != nil {
		return err
	}

	if err := s.repo.Semester.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterNotFound
		}
		s.logger.Error("删除学期失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── CGPA ──────────────────────

// CGPA 将调用者全部学期的课程展平后整体加权计算
func (s *semesterService) CGPA(ctx context.Context, callerID string) (*dto.CGPAResponse, error) {
	semesters, err := s.repo.Semester.ListByOwner(ctx, callerID)
	if err != nil {
		s.logger.Error("查询学期失败", zap.String("user_id", callerID), zap.Error(err))
		return nil, err
	}

	var entries []gpa.Entry
	var totalCredits float64
	for i := range semesters {
		for _, e := range model.GPAEntries(semesters[i].Courses) {
			entries = append(entries, e)
			totalCredits += e.Credits
		}
	}

	return &dto.CGPAResponse{
		CGPA:           gpa.Calculate(entries),
		TotalSemesters: len(semesters),
		TotalCredits:   totalCredits,
	}, nil
}

// ── 内部辅助方法 ──

// loadOwned 读取学期并做归属校验；先判断不存在，再判断越权
func (s *semesterService) loadOwned(ctx context.Context, id, callerID string) (*model.Semester, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSemesterNotFound
	}

	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if err := CheckOwnership(semester.UserID, callerID); err != nil {
		s.logger.Warn("越权访问学期",
			zap.String("id", id),
			zap.String("owner", semester.UserID),
			zap.String("caller", callerID),
		)
		return nil, err
	}

	return semester, nil
}

func toCourses(reqs []dto.CourseRequest) ([]model.Course, error) {
	courses := make([]model.Course, 0, len(reqs))
	for _, r := range reqs {
		code := strings.TrimSpace(r.Code)
		name := strings.TrimSpace(r.Name)
		if code == "" || name == "" || r.Grade == nil {
			return nil, ErrCourseInvalid
		}
		if r.Credits <= 0 || r.Credits > model.MaxCourseCredits || *r.Grade < 0 || *r.Grade > model.MaxCourseGrade {
			return nil, ErrCourseInvalid
		}
		courses = append(courses, model.Course{
			Code:    code,
			Name:    name,
			Credits: r.Credits,
			Grade:   *r.Grade,
		})
	}
	return courses, nil
}

func toSemesterResponse(semester *model.Semester) *dto.SemesterResponse {
	courses := make([]dto.CourseResponse, 0, len(semester.Courses))
	for _, c := range semester.Courses {
		courses = append(courses, dto.CourseResponse{
			Code:    c.Code,
			Name:    c.Name,
			Credits: c.Credits,
			Grade:   c.Grade,
		})
	}

	return &dto.SemesterResponse{
		ID:        semester.SemesterID,
		User:      semester.UserID,
		Number:    semester.Number,
		Courses:   courses,
		GPA:       semester.GPA,
		CreatedAt: semester.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: semester.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
