package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/contacts/internal/clock"
	"github.com/smallbiznis/contacts/internal/country/domain"
	"github.com/smallbiznis/contacts/internal/country/repository"
	"github.com/smallbiznis/contacts/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Country{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return &Service{
		db:    db,
		log:   zaptest.NewLogger(t),
		genID: node,
		clock: clock.NewFakeClock(time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)),
		repo:  repository.Provide(),
	}
}

func TestAddCountry(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("BlankNameFails", func(t *testing.T) {
		_, err := svc.Add(ctx, domain.AddCountryRequest{Name: "   "})

		var vErr *validation.Errors
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("ValidAddIsRetrievable", func(t *testing.T) {
		added, err := svc.Add(ctx, domain.AddCountryRequest{Name: "USA"})
		require.NoError(t, err)
		assert.NotZero(t, added.ID)
		assert.Equal(t, "USA", added.Name)

		got, err := svc.GetByID(ctx, added.ID)
		require.NoError(t, err)
		assert.Equal(t, "USA", got.Name)
	})

	t.Run("DuplicateNameRejected", func(t *testing.T) {
		_, err := svc.Add(ctx, domain.AddCountryRequest{Name: "USA"})
		assert.ErrorIs(t, err, domain.ErrDuplicateName)

		all, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("NameIsTrimmed", func(t *testing.T) {
		added, err := svc.Add(ctx, domain.AddCountryRequest{Name: "  Brazil "})
		require.NoError(t, err)
		assert.Equal(t, "Brazil", added.Name)

		_, err = svc.Add(ctx, domain.AddCountryRequest{Name: "Brazil"})
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})
}

func TestGetCountryByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(ctx, svc.genID.Generate())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAllCountriesOrdered(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"India", "Brazil", "USA"} {
		_, err := svc.Add(ctx, domain.AddCountryRequest{Name: name})
		require.NoError(t, err)
	}

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Brazil", "India", "USA"}, names)
}

func countriesWorkbook(t *testing.T, sheet string, names []string) []byte {
	t.Helper()

	workbook := excelize.NewFile()
	defer workbook.Close()
	require.NoError(t, workbook.SetSheetName("Sheet1", sheet))
	require.NoError(t, workbook.SetCellValue(sheet, "A1", "CountryName"))
	for i, name := range names {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, workbook.SetCellValue(sheet, cell, name))
	}

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestImportFromExcel(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.AddCountryRequest{Name: "USA"})
	require.NoError(t, err)

	t.Run("SkipsBlanksAndExisting", func(t *testing.T) {
		data := countriesWorkbook(t, "Countries", []string{"Brazil", "", "USA", "  ", "India"})

		inserted, err := svc.ImportFromExcel(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, 2, inserted)

		all, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("RerunInsertsNothing", func(t *testing.T) {
		data := countriesWorkbook(t, "Countries", []string{"Brazil", "India"})

		inserted, err := svc.ImportFromExcel(ctx, data)
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})

	t.Run("MissingSheetImportsNothing", func(t *testing.T) {
		data := countriesWorkbook(t, "Nations", []string{"France"})

		inserted, err := svc.ImportFromExcel(ctx, data)
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})

	t.Run("GarbageBytesFail", func(t *testing.T) {
		_, err := svc.ImportFromExcel(ctx, []byte("not a workbook"))
		assert.Error(t, err)
	})
}
