package domain

import "time"

// gridCells - размер сетки календаря: 6 недель по 7 дней.
const gridCells = 42

// CalendarCell - одна ячейка сетки выбора даты просмотра.
type CalendarCell struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Day        int    `json:"day"`
	InMonth    bool   `json:"inMonth"`
	IsToday    bool   `json:"isToday"`
	Selectable bool   `json:"selectable"` // Прошедшие даты выбрать нельзя.
}

// MonthGrid - сетка месяца для календаря заявки на просмотр.
type MonthGrid struct {
	Year  int            `json:"year"`
	Month int            `json:"month"` // 1-12
	Cells []CalendarCell `json:"cells"`
}

// BuildMonthGrid строит сетку из ровно 42 ячеек. Первая ячейка - воскресенье,
// приходящееся на первое число месяца или предшествующее ему.
func BuildMonthGrid(year int, month time.Month, now time.Time) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	cells := make([]CalendarCell, 0, gridCells)
	for i := 0; i < gridCells; i++ {
		d := start.AddDate(0, 0, i)
		cells = append(cells, CalendarCell{
			Date:       d.Format("2006-01-02"),
			Day:        d.Day(),
			InMonth:    d.Month() == month && d.Year() == year,
			IsToday:    d.Equal(today),
			Selectable: !d.Before(today),
		})
	}

	return MonthGrid{Year: year, Month: int(month), Cells: cells}
}

// NextMonth возвращает год и месяц, следующие за переданными. Декабрь
// переходит в январь следующего года.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// PrevMonth возвращает год и месяц, предшествующие переданным.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
