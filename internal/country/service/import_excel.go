package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/smallbiznis/contacts/internal/country/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const importSheetName = "Countries"

// ImportFromExcel inserts the country names listed in column A of the
// "Countries" worksheet, one per row starting below the header.
func (s *Service) ImportFromExcel(ctx context.Context, data []byte) (int, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(importSheetName)
	if err != nil {
		// A workbook without the expected sheet imports nothing.
		return 0, nil
	}

	inserted := 0
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		if len(row) == 0 {
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}

		existing, err := s.repo.FindByName(ctx, s.db, name)
		if err != nil {
			return inserted, err
		}
		if existing != nil {
			continue
		}

		country := domain.Country{
			ID:        s.genID.Generate(),
			Name:      name,
			CreatedAt: s.clock.Now(),
		}
		if err := s.repo.Insert(ctx, s.db, &country); err != nil {
			return inserted, err
		}
		inserted++
	}

	s.log.Info("countries imported", zap.Int("inserted", inserted))
	return inserted, nil
}
