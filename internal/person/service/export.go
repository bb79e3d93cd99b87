package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/smallbiznis/contacts/internal/person/domain"
	"github.com/xuri/excelize/v2"
)

const exportDateLayout = "2006-01-02"

// ExportCSV renders every person as CSV: one header row of response field
// names, one row per record.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	persons, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"PersonID", "PersonName", "Email", "DateOfBirth", "Age",
		"Gender", "Country", "Address", "ReceiveNewsLetters", "TaxIdNumber"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for i := range persons {
		p := &persons[i]
		record := []string{
			p.ID.String(),
			p.PersonName,
			p.Email,
			formatDate(p),
			formatAge(p),
			p.Gender,
			p.Country,
			p.Address,
			strconv.FormatBool(p.ReceiveNewsLetters),
			p.TaxIdNumber,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const exportSheetName = "PersonsSheet"

var excelHeader = []string{"Person Name", "Email", "Date of Birth", "Age",
	"Gender", "Country", "Address", "Receive News Letters"}

// ExportExcel renders every person into a styled "PersonsSheet" worksheet.
func (s *Service) ExportExcel(ctx context.Context) ([]byte, error) {
	persons, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, err
	}

	for col, title := range excelHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := workbook.SetCellValue(exportSheetName, cell, title); err != nil {
			return nil, err
		}
	}

	headerStyle, err := workbook.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"228B22"}},
	})
	if err != nil {
		return nil, err
	}
	if err := workbook.SetCellStyle(exportSheetName, "A1", "H1", headerStyle); err != nil {
		return nil, err
	}

	for i := range persons {
		p := &persons[i]
		row := i + 2
		values := []interface{}{
			p.PersonName,
			p.Email,
			formatDate(p),
			nil,
			p.Gender,
			p.Country,
			p.Address,
			p.ReceiveNewsLetters,
		}
		if p.Age != nil {
			values[3] = *p.Age
		}
		for col, value := range values {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := workbook.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatDate(p *domain.PersonResponse) string {
	if p.DateOfBirth == nil {
		return ""
	}
	return p.DateOfBirth.Format(exportDateLayout)
}

func formatAge(p *domain.PersonResponse) string {
	if p.Age == nil {
		return ""
	}
	return strconv.Itoa(*p.Age)
}
