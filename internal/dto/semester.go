package dto

// ── 学期模块 DTO ──

// CourseRequest 课程入参
// grade 使用指针以区分 "未提供" 与 0 分
type CourseRequest struct {
	Code    string   `json:"code"    binding:"required,max=50"`
	Name    string   `json:"name"    binding:"required,max=200"`
	Credits float64  `json:"credits" binding:"gt=0,lte=100"`
	Grade   *float64 `json:"grade"   binding:"required,gte=0,lte=100"`
}

// CreateSemesterRequest 创建学期请求
type CreateSemesterRequest struct {
	Number  int             `json:"number"  binding:"required,min=1"`
	Courses []CourseRequest `json:"courses" binding:"omitempty,dive"`
}

// UpdateSemesterRequest 更新学期请求（部分字段）
// courses 非 nil 时整体替换课程列表
type UpdateSemesterRequest struct {
	Number  *int             `json:"number"  binding:"omitempty,min=1"`
	Courses *[]CourseRequest `json:"courses" binding:"omitempty,dive"`
}

// CourseResponse 课程响应
type CourseResponse struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Credits float64 `json:"credits"`
	Grade   float64 `json:"grade"`
}

// SemesterResponse 学期信息响应
type SemesterResponse struct {
	ID        string           `json:"id"`
	User      string           `json:"user"`
	Number    int              `json:"number"`
	Courses   []CourseResponse `json:"courses"`
	GPA       float64          `json:"gpa"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

// CGPAResponse 累计绩点
type CGPAResponse struct {
	CGPA           float64 `json:"cgpa"`
	TotalSemesters int     `json:"totalSemesters"`
	TotalCredits   float64 `json:"totalCredits"`
}
