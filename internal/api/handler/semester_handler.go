package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Balajicg5/cgpa-calculator-backend/internal/dto"
	"github.com/Balajicg5/cgpa-calculator-backend/internal/service"
	"github.com/Balajicg5/cgpa-calculator-backend/pkg/response"
)

// 学期模块错误文案
const (
	MsgSemesterNotFound = "Semester not found"
	MsgCourseInvalid    = "Each course needs a code, a name, credits between 0 and 100 and a grade between 0 and 100"
)

// SemesterHandler 学期模块 HTTP 处理器
type SemesterHandler struct {
	semesterSvc service.SemesterService
}

// NewSemesterHandler 创建 SemesterHandler
func NewSemesterHandler(semesterSvc service.SemesterService) *SemesterHandler {
	return &SemesterHandler{semesterSvc: semesterSvc}
}

// ListSemesters 获取当前用户的学期列表
// GET /api/semesters
func (h *SemesterHandler) ListSemesters(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semesters, err := h.semesterSvc.List(c.Request.Context(), callerID)
	if err != nil {
		h.handleSemesterError(c, err, "access")
		return
	}

	response.OKList(c, semesters, len(semesters))
}

// GetSemester 获取学期详情
// GET /api/semesters/:id
func (h *SemesterHandler) GetSemester(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	semester, err := h.semesterSvc.GetByID(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		h.handleSemesterError(c, err, "access")
		return
	}

	response.OK(c, semester)
}

// CreateSemester 创建学期
// POST /api/semesters
func (h *SemesterHandler) CreateSemester(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	semester, err := h.semesterSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleSemesterError(c, err, "create")
		return
	}

	response.Created(c, semester)
}

// UpdateSemester 更新学期（部分字段）
// PUT /api/semesters/:id
func (h *SemesterHandler) UpdateSemester(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	semester, err := h.semesterSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleSemesterError(c, err, "update")
		return
	}

	response.OK(c, semester)
}

// DeleteSemester 删除学期
// DELETE /api/semesters/:id
func (h *SemesterHandler) DeleteSemester(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.semesterSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleSemesterError(c, err, "delete")
		return
	}

	response.OK(c, gin.H{})
}

// CalculateCGPA 计算累计绩点
// GET /api/semesters/cgpa
func (h *SemesterHandler) CalculateCGPA(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.semesterSvc.CGPA(c.Request.Context(), callerID)
	if err != nil {
		h.handleSemesterError(c, err, "access")
		return
	}

	response.OKFields(c, gin.H{
		"cgpa":           result.CGPA,
		"totalSemesters": result.TotalSemesters,
		"totalCredits":   result.TotalCredits,
	})
}

// handleSemesterError 统一处理学期模块业务错误
// action 用于越权提示：access | update | delete
func (h *SemesterHandler) handleSemesterError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, MsgSemesterNotFound)
	case errors.Is(err, service.ErrSemesterForbidden):
		response.Unauthorized(c, "Not authorized to "+action+" this semester")
	case errors.Is(err, service.ErrCourseInvalid):
		response.BadRequest(c, MsgCourseInvalid)
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
