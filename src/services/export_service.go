// backend/src/services/export_service.go
package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/username/safrapanel/backend/src/processors"
	"github.com/username/safrapanel/backend/src/season"
	"github.com/username/safrapanel/backend/src/security/validation"
	"github.com/username/safrapanel/backend/src/utils"
)

type exportServiceImpl struct {
	reports ReportService
}

// NewExportService returns an ExportService rendering freight reports as
// XLSX workbooks.
func NewExportService(reports ReportService) ExportService {
	return &exportServiceImpl{reports: reports}
}

const freightSheet = "Fretes"

var freightHeader = []string{
	"Data", "NF-e", "Motorista", "Placa", "Armazém", "Fazenda",
	"Sacas Cobradas", "Preço/Saca (R$)", "Valor Frete (R$)",
}

// FreightWorkbook renders the freight report for one season and query as an
// XLSX workbook. The export rejects unknown season ids instead of falling
// back to the default season: a mislabeled download is worse than an error.
func (s *exportServiceImpl) FreightWorkbook(seasonID string, query processors.FreightQuery) ([]byte, error) {
	if !season.Known(seasonID) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSeason, seasonID)
	}
	report, err := s.reports.Freight(seasonID, query)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", freightSheet)

	for col, title := range freightHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(freightSheet, cell, title); err != nil {
			return nil, err
		}
	}

	rowIdx := 2
	if query.Model == processors.ModelByFarm {
		for _, group := range report.Groups {
			if err := setCell(f, 1, rowIdx, validation.SanitizeForFormulaInjection(group.Farm)); err != nil {
				return nil, err
			}
			rowIdx++
			for _, row := range group.Rows {
				if err := writeFreightRow(f, rowIdx, row); err != nil {
					return nil, err
				}
				rowIdx++
			}
			if err := writeSubtotal(f, rowIdx, "Subtotal "+group.Farm, group.Subtotal); err != nil {
				return nil, err
			}
			rowIdx += 2 // blank line between groups
		}
	} else {
		for _, row := range report.Rows {
			if err := writeFreightRow(f, rowIdx, row); err != nil {
				return nil, err
			}
			rowIdx++
		}
	}
	if err := writeSubtotal(f, rowIdx, "Total Geral", report.Totals); err != nil {
		return nil, err
	}

	if report.Settlement != nil {
		rowIdx += 2
		settlementRows := [][2]any{
			{"Total Frete (R$)", report.Settlement.FreightTotal},
			{"Adiantamentos (R$)", report.Settlement.AdvanceTotal},
			{"Abastecimentos (R$)", report.Settlement.FuelTotal},
			{"Saldo (R$)", report.Settlement.Balance},
			{"Situação", report.Settlement.Status},
		}
		for _, pair := range settlementRows {
			if err := setCell(f, 1, rowIdx, pair[0]); err != nil {
				return nil, err
			}
			if err := setCell(f, 2, rowIdx, pair[1]); err != nil {
				return nil, err
			}
			rowIdx++
		}
	}

	if err := f.SetColWidth(freightSheet, "A", "I", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: rendering workbook: %v", ErrStorageFailed, err)
	}
	return buf.Bytes(), nil
}

func writeFreightRow(f *excelize.File, rowIdx int, row processors.FreightRow) error {
	date := ""
	if row.Date != nil {
		date = utils.FormatBRDate(*row.Date)
	}
	values := []any{
		date,
		row.Invoice,
		validation.SanitizeForFormulaInjection(row.Driver),
		validation.SanitizeForFormulaInjection(row.Plate),
		validation.SanitizeForFormulaInjection(row.Warehouse),
		validation.SanitizeForFormulaInjection(row.Farm),
		row.BilledSacks,
		row.PricePerSack,
		row.Fee,
	}
	for col, v := range values {
		if err := setCell(f, col+1, rowIdx, v); err != nil {
			return err
		}
	}
	return nil
}

func writeSubtotal(f *excelize.File, rowIdx int, label string, totals processors.FreightTotals) error {
	if err := setCell(f, 1, rowIdx, validation.SanitizeForFormulaInjection(label)); err != nil {
		return err
	}
	if err := setCell(f, 7, rowIdx, totals.Sacks); err != nil {
		return err
	}
	return setCell(f, 9, rowIdx, totals.Value)
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(freightSheet, cell, v)
}
