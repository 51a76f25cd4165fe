package model

import "testing"

func TestSemester_RecalculateGPA(t *testing.T) {
	s := &Semester{
		Courses: []Course{
			{Code: "CS101", Name: "程序设计", Credits: 3, Grade: 4.0},
			{Code: "MA101", Name: "高等数学", Credits: 4, Grade: 3.5},
		},
		GPA: 1.23,
	}

	s.RecalculateGPA()
	if s.GPA != 3.71 {
		t.Errorf("期望 GPA=3.71，实际=%v", s.GPA)
	}

	s.Courses = nil
	s.RecalculateGPA()
	if s.GPA != 0 {
		t.Errorf("课程为空时期望 GPA=0，实际=%v", s.GPA)
	}
}
