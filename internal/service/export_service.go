package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Balajicg5/cgpa-calculator-backend/internal/model"
	"github.com/Balajicg5/cgpa-calculator-backend/internal/repository"
	"github.com/Balajicg5/cgpa-calculator-backend/pkg/gpa"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSemesters  = errors.New("no semesters to export")
	ErrExportGenerateFail = errors.New("failed to generate transcript")
)

// TranscriptSheet 成绩单工作表名称
const TranscriptSheet = "Transcript"

// ExportService 导出业务接口
//
// 成绩单格式（单个 Sheet）：
//   - 表头：Semester / Code / Course / Credits / Grade / Points
//   - 每个学期依次列出课程，随后一行为该学期 GPA，再空一行
//   - 末尾两行：Total Credits 与 CGPA（全部课程展平计算）
type ExportService interface {
	ExportTranscript(ctx context.Context, callerID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportTranscript(ctx context.Context, callerID string) (*bytes.Buffer, string, error) {
	semesters, err := s.repo.Semester.ListByOwner(ctx, callerID)
	if err != nil {
		s.logger.Error("查询学期失败", zap.String("user_id", callerID), zap.Error(err))
		return nil, "", err
	}
	if len(semesters) == 0 {
		return nil, "", ErrExportNoSemesters
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TranscriptSheet); err != nil {
		return nil, "", s.generateFail(err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, "", s.generateFail(err)
	}

	headers := []interface{}{"Semester", "Code", "Course", "Credits", "Grade", "Points"}
	if err := f.SetSheetRow(TranscriptSheet, "A1", &headers); err != nil {
		return nil, "", s.generateFail(err)
	}
	_ = f.SetCellStyle(TranscriptSheet, "A1", "F1", boldStyle)

	row := 2
	var all []gpa.Entry
	var totalCredits float64

	for i := range semesters {
		sem := &semesters[i]
		for _, c := range sem.Courses {
			values := []interface{}{sem.Number, c.Code, c.Name, c.Credits, c.Grade, gpa.Round2(c.Credits * c.Grade)}
			if err := f.SetSheetRow(TranscriptSheet, cellName(1, row), &values); err != nil {
				return nil, "", s.generateFail(err)
			}
			totalCredits += c.Credits
			row++
		}
		all = append(all, model.GPAEntries(sem.Courses)...)

		summary := []interface{}{fmt.Sprintf("Semester %d GPA", sem.Number), nil, nil, nil, sem.GPA}
		if err := f.SetSheetRow(TranscriptSheet, cellName(1, row), &summary); err != nil {
			return nil, "", s.generateFail(err)
		}
		_ = f.SetCellStyle(TranscriptSheet, cellName(1, row), cellName(5, row), boldStyle)
		row += 2
	}

	totals := [][]interface{}{
		{"Total Credits", nil, nil, totalCredits},
		{"CGPA", nil, nil, nil, gpa.Calculate(all)},
	}
	for _, values := range totals {
		if err := f.SetSheetRow(TranscriptSheet, cellName(1, row), &values); err != nil {
			return nil, "", s.generateFail(err)
		}
		_ = f.SetCellStyle(TranscriptSheet, cellName(1, row), cellName(5, row), boldStyle)
		row++
	}

	_ = f.SetColWidth(TranscriptSheet, "A", "A", 18)
	_ = f.SetColWidth(TranscriptSheet, "C", "C", 36)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", s.generateFail(err)
	}

	filename := fmt.Sprintf("transcript-%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

func (s *exportService) generateFail(err error) error {
	s.logger.Error("生成成绩单失败", zap.Error(err))
	return ErrExportGenerateFail
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
