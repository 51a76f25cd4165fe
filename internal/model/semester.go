package model

import (
	"github.com/Balajicg5/cgpa-calculator-backend/pkg/gpa"
)

// Course 课程，以 JSON 形式内嵌于 semesters.courses
type Course struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Credits float64 `json:"credits"`
	Grade   float64 `json:"grade"`
}

// 单门课程的取值上限，与请求绑定校验保持一致
const (
	MaxCourseCredits = 100
	MaxCourseGrade   = 100
)

// Semester 学期表，对应 semesters
// 一行即一个完整文档：courses 与 gpa 总是在同一条语句中写入
type Semester struct {
	SemesterID string   `gorm:"type:uuid;primaryKey"                  json:"id"`
	UserID     string   `gorm:"type:uuid;not null;index"              json:"user"`
	Number     int      `gorm:"not null"                              json:"number"`
	Courses    []Course `gorm:"type:jsonb;serializer:json;not null"   json:"courses"`
	GPA        float64  `gorm:"type:double precision;not null;default:0" json:"gpa"`
	SoftDeleteModel
}

// TableName 指定表名
func (Semester) TableName() string { return "semesters" }

// RecalculateGPA 按当前 courses 重算 gpa，写库前必须调用
func (s *Semester) RecalculateGPA() {
	s.GPA = gpa.Calculate(GPAEntries(s.Courses))
}

// GPAEntries 将课程列表转换为绩点计算输入
func GPAEntries(courses []Course) []gpa.Entry {
	entries := make([]gpa.Entry, 0, len(courses))
	for _, c := range courses {
		entries = append(entries, gpa.Entry{Credits: c.Credits, Grade: c.Grade})
	}
	return entries
}
