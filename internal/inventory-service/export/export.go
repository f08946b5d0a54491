// Package export serializes server records for download. Only the
// visible columns are exported, in their configured order.
package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"server-inventory-dashboard/internal/inventory-service/model"
	"server-inventory-dashboard/internal/inventory-service/query"

	"github.com/xuri/excelize/v2"
)

const timestampFormat = "2006-01-02 15:04:05"

// HeaderForField turns a camelCase field name into a Title Case column
// header: "serverName" becomes "Server Name".
func HeaderForField(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cellValue renders one field of one record for export. Set-valued
// fields are joined with ", "; timestamps use a fixed layout.
func cellValue(server *model.Server, field string) string {
	switch field {
	case "createdAt":
		return server.CreatedAt.Format(timestampFormat)
	case "updatedAt":
		return server.UpdatedAt.Format(timestampFormat)
	}
	return strings.Join(query.FieldValues(server, field), ", ")
}

// ToCSV renders the records as CSV. The header row is plain; every data
// cell is wrapped in double quotes with internal quotes doubled. This
// exact escaping is part of the export contract.
func ToCSV(servers []model.Server, visibleFields []string) []byte {
	var b strings.Builder
	for i, field := range visibleFields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(HeaderForField(field))
	}
	b.WriteByte('\n')
	for i, server := range servers {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range visibleFields {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cellValue(&server, field), `"`, `""`))
			b.WriteByte('"')
		}
	}
	return []byte(b.String())
}

// ToExcel renders the records as a single-sheet xlsx workbook.
func ToExcel(servers []model.Server, visibleFields []string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Servers"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := make([]interface{}, len(visibleFields))
	for i, field := range visibleFields {
		headers[i] = HeaderForField(field)
	}
	if err = f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}
	for i, server := range servers {
		row := make([]interface{}, len(visibleFields))
		for j, field := range visibleFields {
			row[j] = cellValue(&server, field)
		}
		startCell := fmt.Sprintf("A%d", i+2)
		if err = f.SetSheetRow(sheetName, startCell, &row); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

// FileName names a download after the current day.
func FileName(format string) string {
	return fmt.Sprintf("server-export-%s.%s", time.Now().Format("2006-01-02"), format)
}
