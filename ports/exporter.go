package ports

import "io"

// ReportExporter writes an estimate as a downloadable workbook.
type ReportExporter interface {
	Export(result *EstimateResult, w io.Writer) error
}
