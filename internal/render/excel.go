package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"oficina_os/internal/domain/entities"
)

const exportSheetName = "Ordens"

var exportHeaders = []string{
	"OS", "Data", "Cliente", "Placa", "Pagamento", "Status",
	"Mão de Obra", "Deslocamento", "Total",
}

// BuildWorkbook lays the order collection out as a spreadsheet, one row per
// order in the given sequence. Money columns are numeric cells so totals can
// be summed in the sheet.
func BuildWorkbook(orders []entities.ServiceOrder) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(exportSheetName, cell, header)
		f.SetCellStyle(exportSheetName, cell, cell, headerStyle)
	}

	for rowIdx, o := range orders {
		row := rowIdx + 2
		f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), o.ID)
		f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row), FormatDate(o.Date))
		f.SetCellValue(exportSheetName, fmt.Sprintf("C%d", row), o.Client.Name)
		f.SetCellValue(exportSheetName, fmt.Sprintf("D%d", row), o.Vehicle.Plate)
		f.SetCellValue(exportSheetName, fmt.Sprintf("E%d", row), string(o.PaymentMethod))
		f.SetCellValue(exportSheetName, fmt.Sprintf("F%d", row), string(o.PaymentStatus))
		f.SetCellValue(exportSheetName, fmt.Sprintf("G%d", row), o.Values.Labor)
		f.SetCellValue(exportSheetName, fmt.Sprintf("H%d", row), o.Values.Travel)
		f.SetCellValue(exportSheetName, fmt.Sprintf("I%d", row), o.Total())
	}

	for i := range exportHeaders {
		col := string(rune('A' + i))
		f.SetColWidth(exportSheetName, col, col, 18)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}
