package handler

import "github.com/Balajicg5/cgpa-calculator-backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth     *AuthHandler
	Semester *SemesterHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		Semester: NewSemesterHandler(svc.Semester),
		Export:   NewExportHandler(svc.Export),
	}
}
