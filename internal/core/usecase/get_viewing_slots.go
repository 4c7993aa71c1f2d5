package usecase

import (
	"context"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type GetViewingSlotsUseCase struct {
	now func() time.Time
}

func NewGetViewingSlotsUseCase() *GetViewingSlotsUseCase {
	return &GetViewingSlotsUseCase{now: time.Now}
}

// Execute строит календарную сетку месяца для выбора даты просмотра.
func (uc *GetViewingSlotsUseCase) Execute(ctx context.Context, year int, month time.Month) (*domain.MonthGrid, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetViewingSlots",
		"year":     year,
		"month":    int(month),
	})

	if year < 2000 || year > 2200 || month < time.January || month > time.December {
		ucLogger.Warn("Invalid calendar coordinates", nil)
		return nil, domain.NewValidationError([]string{"Year and month are out of range"})
	}

	grid := domain.BuildMonthGrid(year, month, uc.now())

	ucLogger.Debug("Calendar grid built", port.Fields{"cells": len(grid.Cells)})
	return &grid, nil
}
