package gpa

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    float64
	}{
		{"空列表", nil, 0},
		{"单门课程", []Entry{{Credits: 3, Grade: 3.7}}, 3.7},
		{"加权平均 26/7", []Entry{{Credits: 3, Grade: 4.0}, {Credits: 4, Grade: 3.5}}, 3.71},
		{"全部零分", []Entry{{Credits: 2, Grade: 0}, {Credits: 3, Grade: 0}}, 0},
		{"零学分", []Entry{{Credits: 0, Grade: 4.0}}, 0},
		{"三门课程", []Entry{{Credits: 4, Grade: 4.0}, {Credits: 3, Grade: 3.0}, {Credits: 2, Grade: 2.0}}, 3.22},
		{"学分溢出", []Entry{{Credits: 1e308, Grade: 4}, {Credits: 1e308, Grade: 3}}, 0},
		{"积分溢出", []Entry{{Credits: 1e300, Grade: 1e300}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.entries)
			if got != tt.want {
				t.Errorf("Calculate() = %v，期望 %v", got, tt.want)
			}
		})
	}
}

func TestCalculate_NeverNaN(t *testing.T) {
	got := Calculate([]Entry{})
	if got != got {
		t.Fatal("空列表不应返回 NaN")
	}
	if got != 0 {
		t.Errorf("期望 0，实际 %v", got)
	}
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	// 3.125 与 2.5 在二进制下精确可表示，用于固定舍入方向
	if got := Round2(3.125); got != 3.13 {
		t.Errorf("Round2(3.125) = %v，期望 3.13", got)
	}
	if got := Round2(-3.125); got != -3.13 {
		t.Errorf("Round2(-3.125) = %v，期望 -3.13", got)
	}
	if got := Round2(2.5); got != 2.5 {
		t.Errorf("Round2(2.5) = %v，期望 2.5", got)
	}
}

func TestCalculate_TieRoundsUp(t *testing.T) {
	// 1×3.25 + 1×3.0 = 6.25 / 2 = 3.125 → 3.13
	got := Calculate([]Entry{{Credits: 1, Grade: 3.25}, {Credits: 1, Grade: 3.0}})
	if got != 3.13 {
		t.Errorf("期望 3.13，实际 %v", got)
	}
}

func TestCalculate_FlattenedNotAveraged(t *testing.T) {
	sem1 := []Entry{{Credits: 1, Grade: 4.0}}
	sem2 := []Entry{{Credits: 3, Grade: 2.0}}

	flat := append(append([]Entry{}, sem1...), sem2...)
	cgpa := Calculate(flat)

	// (4 + 6) / 4 = 2.5，而学期 GPA 平均值为 3.0
	if cgpa != 2.5 {
		t.Errorf("期望 CGPA=2.5，实际 %v", cgpa)
	}
	avg := (Calculate(sem1) + Calculate(sem2)) / 2
	if cgpa == avg {
		t.Error("CGPA 不应等于学期 GPA 的平均值")
	}
}
