package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/smallbiznis/contacts/internal/person/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCSV(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	countryID := seedCountry(t, svc, "USA")

	added, err := svc.Add(ctx, domain.AddPersonRequest{
		PersonName:         "Mary",
		Email:              "mary@example.com",
		DateOfBirth:        dob(2002, time.May, 6),
		Gender:             domain.GenderFemale,
		CountryID:          &countryID,
		Address:            "12 Elm Street",
		ReceiveNewsLetters: true,
		TaxIdNumber:        "ABC-123",
	})
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.AddPersonRequest{Email: "anon@example.com"})
	require.NoError(t, err)

	data, err := svc.ExportCSV(ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"PersonID", "PersonName", "Email", "DateOfBirth", "Age",
		"Gender", "Country", "Address", "ReceiveNewsLetters", "TaxIdNumber"}, records[0])

	assert.Equal(t, []string{
		added.ID.String(), "Mary", "mary@example.com", "2002-05-06", "23",
		"Female", "USA", "12 Elm Street", "true", "ABC-123",
	}, records[1])

	// Absent optional fields render as empty cells, not placeholders.
	assert.Equal(t, "anon@example.com", records[2][2])
	assert.Equal(t, "", records[2][3])
	assert.Equal(t, "", records[2][4])
	assert.Equal(t, "false", records[2][8])
}

func TestExportCSVEmptyStore(t *testing.T) {
	svc := newTestService(t)

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestExportExcel(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	countryID := seedCountry(t, svc, "Brazil")

	_, err := svc.Add(ctx, domain.AddPersonRequest{
		PersonName:  "Rahman",
		Email:       "rahman@example.com",
		DateOfBirth: dob(1990, time.March, 2),
		Gender:      domain.GenderMale,
		CountryID:   &countryID,
	})
	require.NoError(t, err)

	data, err := svc.ExportExcel(ctx)
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, excelHeader, rows[0])
	assert.Equal(t, "Rahman", rows[1][0])
	assert.Equal(t, "rahman@example.com", rows[1][1])
	assert.Equal(t, "1990-03-02", rows[1][2])
	assert.Equal(t, "35", rows[1][3])
	assert.Equal(t, "Male", rows[1][4])
	assert.Equal(t, "Brazil", rows[1][5])

	styleID, err := workbook.GetCellStyle(exportSheetName, "A1")
	require.NoError(t, err)
	assert.NotZero(t, styleID)
}
