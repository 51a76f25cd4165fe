package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/Balajicg5/cgpa-calculator-backend/internal/model"
	"github.com/Balajicg5/cgpa-calculator-backend/internal/repository"
)

var errMockDB = errors.New("mock db error")

// ── Mock SemesterRepository ──

type mockSemesterRepo struct {
	semesters map[string]*model.Semester
	seq       int
	listErr   error
	updateErr error
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{semesters: make(map[string]*model.Semester)}
}

// Create 与真实实现一致：写入前重算 gpa
func (m *mockSemesterRepo) Create(_ context.Context, semester *model.Semester) error {
	if semester.SemesterID == "" {
		m.seq++
		semester.SemesterID = mockUUID(m.seq)
	}
	semester.RecalculateGPA()
	semester.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	semester.UpdatedAt = semester.CreatedAt
	cp := *semester
	cp.Courses = append([]model.Course(nil), semester.Courses...)
	m.semesters[semester.SemesterID] = &cp
	return nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, id string) (*model.Semester, error) {
	if s, ok := m.semesters[id]; ok {
		cp := *s
		cp.Courses = append([]model.Course(nil), s.Courses...)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Semester, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.Semester
	for _, s := range m.semesters {
		if s.UserID == ownerID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

func (m *mockSemesterRepo) Update(_ context.Context, semester *model.Semester) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.semesters[semester.SemesterID]; !ok {
		return gorm.ErrRecordNotFound
	}
	semester.RecalculateGPA()
	cp := *semester
	cp.Courses = append([]model.Course(nil), semester.Courses...)
	m.semesters[semester.SemesterID] = &cp
	return nil
}

func (m *mockSemesterRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.semesters[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.semesters, id)
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users     map[string]*model.User
	seq       int
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if user.UserID == "" {
		m.seq++
		user.UserID = mockUUID(1000 + m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock TokenBlacklist ──

type mockBlacklist struct {
	tokens map[string]time.Duration
	err    error
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{tokens: make(map[string]time.Duration)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.tokens[jti] = ttl
	return nil
}

// ── 辅助 ──

func newMockRepository() (*repository.Repository, *mockSemesterRepo, *mockUserRepo) {
	semesterRepo := newMockSemesterRepo()
	userRepo := newMockUserRepo()
	return &repository.Repository{
		User:     userRepo,
		Semester: semesterRepo,
	}, semesterRepo, userRepo
}

func mockUUID(n int) string {
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
}
