// Package gpa 学分加权绩点计算
//
// 同一算法用于两种粒度：单学期 GPA（该学期全部课程）与累计 CGPA（用户全部学期课程展平后整体计算）。
// CGPA 不是各学期 GPA 的平均值。
package gpa

import "math"

// Entry 参与计算的一门课程（学分 + 绩点）
type Entry struct {
	Credits float64
	Grade   float64
}

// Calculate 计算 Σ(credits×grade) / Σcredits，保留两位小数
// 总学分为 0（含空列表）或累加溢出为非有限值时返回 0
func Calculate(entries []Entry) float64 {
	var totalPoints, totalCredits float64
	for _, e := range entries {
		totalPoints += e.Credits * e.Grade
		totalCredits += e.Credits
	}
	if totalCredits == 0 {
		return 0
	}
	v := Round2(totalPoints / totalCredits)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round2 四舍五入到两位小数（half away from zero）
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
