// Package excel exports an estimate as an xlsx workbook: one sheet with the
// per-setting posterior table, one with the goal ratings.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"settei/internal/errors"
	"settei/ports"
)

const (
	posteriorSheet = "Posterior"
	goalsSheet     = "Goals"
)

// ReportWriter implements ports.ReportExporter on excelize.
type ReportWriter struct{}

// NewReportWriter creates a workbook exporter.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Export writes the workbook for one estimate to w.
func (rw *ReportWriter) Export(result *ports.EstimateResult, w io.Writer) error {
	if result == nil {
		return errors.InvalidInput("estimate result is required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := rw.writePosteriorSheet(f, result); err != nil {
		return errors.ExportError("failed to write posterior sheet", err)
	}
	if err := rw.writeGoalsSheet(f, result); err != nil {
		return errors.ExportError("failed to write goals sheet", err)
	}

	if err := f.Write(w); err != nil {
		return errors.ExportError("failed to write workbook", err)
	}
	return nil
}

func (rw *ReportWriter) writePosteriorSheet(f *excelize.File, result *ports.EstimateResult) error {
	if err := f.SetSheetName("Sheet1", posteriorSheet); err != nil {
		return err
	}

	header := []interface{}{"Setting", "Hit prob (1/x)", "Prior %", "Posterior %"}
	if err := f.SetSheetRow(posteriorSheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range result.Rows {
		cells := []interface{}{
			string(row.Key),
			fmt.Sprintf("1/%.2f", row.Denominator),
			row.PriorPct,
			row.PosteriorPct,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(posteriorSheet, cell, &cells); err != nil {
			return err
		}
	}

	// Observation summary below the table.
	base := len(result.Rows) + 3
	summary := [][]interface{}{
		{"Spins", result.Spins},
		{"Hits", result.Hits},
		{"Hit rate %", result.HitRatePct},
		{"95% CI width (pt)", result.IntervalWidthPct},
		{"Top setting", string(result.TopKey)},
		{"Top posterior %", result.TopProbPct},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, base+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(posteriorSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (rw *ReportWriter) writeGoalsSheet(f *excelize.File, result *ports.EstimateResult) error {
	if _, err := f.NewSheet(goalsSheet); err != nil {
		return err
	}

	header := []interface{}{"Goal", "Stars", "Goal %", "Alt %", "Diff (pt)", "Ratio", "Insufficient", "Comment"}
	if err := f.SetSheetRow(goalsSheet, "A1", &header); err != nil {
		return err
	}
	for i, goal := range result.Goals {
		ratio := interface{}(goal.Evaluation.Ratio)
		if goal.Evaluation.RatioInf {
			ratio = "∞"
		}
		cells := []interface{}{
			goal.Code,
			goal.Evaluation.Stars,
			goal.GoalProb * 100.0,
			goal.AltProb * 100.0,
			goal.Evaluation.DiffPct,
			ratio,
			goal.Evaluation.Insufficient,
			goal.Evaluation.Comment,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(goalsSheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}
