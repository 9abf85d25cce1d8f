package repository

import (
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(reports entity.ReportSet, filename string, outputDir string) (string, error)
	ExportToJSON(reports entity.ReportSet, filename string, outputDir string) (string, error)
	ExportToPDF(reports entity.ReportSet, filename string, outputDir string) (string, error)
}
