package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"same month", Date(2024, 3, 1), Date(2024, 3, 31), 0},
		{"ignores day of month", Date(2024, 1, 31), Date(2024, 2, 1), 1},
		{"across years", Date(2023, 1, 1), Date(2024, 7, 15), 18},
		{"reversed", Date(2024, 7, 15), Date(2023, 1, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthsBetween(tt.start, tt.end))
		})
	}
}

func TestYearsBetween(t *testing.T) {
	assert.Equal(t, 1, YearsBetween(Date(2023, 1, 1), Date(2024, 7, 15)))
	assert.Equal(t, 0, YearsBetween(Date(2023, 1, 1), Date(2023, 12, 31)))
	assert.Equal(t, 4, YearsBetween(Date(2020, 1, 1), Date(2024, 1, 1)))
	assert.Equal(t, 0, YearsBetween(Date(2024, 1, 1), Date(2020, 1, 1)))
}

func TestCompleteYearsAndLastAnniversary(t *testing.T) {
	admission := Date(2021, 5, 10)

	assert.Equal(t, 2, CompleteYears(admission, Date(2024, 5, 9)))
	assert.Equal(t, 3, CompleteYears(admission, Date(2024, 5, 10)))
	assert.Equal(t, Date(2023, 5, 10), LastAnniversary(admission, Date(2024, 5, 9)))
}

func TestProportionalDays(t *testing.T) {
	assert.Equal(t, 15, ProportionalDays(Date(2024, 7, 1), Date(2024, 7, 15), 30))
	assert.Equal(t, 30, ProportionalDays(Date(2024, 7, 1), Date(2024, 7, 31), 30))
	assert.Equal(t, 1, ProportionalDays(Date(2024, 7, 1), Date(2024, 7, 1), 30))
	assert.Equal(t, 0, ProportionalDays(Date(2024, 7, 2), Date(2024, 7, 1), 30))
	assert.Equal(t, 30, ProportionalDays(Date(2024, 1, 1), Date(2024, 12, 31), 0), "non-positive cap defaults to 30")
}

func TestMonthsWithFifteenDays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"twenty days credits the month", Date(2024, 1, 1), Date(2024, 1, 20), 1},
		{"ten days credits nothing", Date(2024, 1, 1), Date(2024, 1, 10), 0},
		{"exactly fifteen days", Date(2024, 1, 1), Date(2024, 1, 15), 1},
		{"full year", Date(2024, 1, 1), Date(2024, 12, 31), 12},
		{"late admission in month", Date(2024, 3, 20), Date(2024, 6, 30), 3},
		{"reversed span", Date(2024, 6, 30), Date(2024, 3, 20), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthsWithFifteenDays(tt.start, tt.end))
		})
	}
}

func TestProportionalMonths(t *testing.T) {
	assert.Equal(t, 7, ProportionalMonths(Date(2024, 1, 1), Date(2024, 7, 15)))
	assert.Equal(t, 6, ProportionalMonths(Date(2024, 1, 1), Date(2024, 7, 10)))
	assert.Equal(t, 2, ProportionalMonths(Date(2024, 5, 10), Date(2024, 7, 20)))
	assert.Equal(t, 0, ProportionalMonths(Date(2024, 5, 10), Date(2024, 5, 20)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, Date(2024, 2, 29), EndOfMonth(Date(2024, 2, 10)))
}

func TestServiceTimeText(t *testing.T) {
	assert.Equal(t, "1 ano, 6 meses e 14 dias", ServiceTimeText(Date(2023, 1, 1), Date(2024, 7, 15)))
	assert.Equal(t, "2 anos", ServiceTimeText(Date(2022, 3, 1), Date(2024, 3, 1)))
	assert.Equal(t, "1 mês e 1 dia", ServiceTimeText(Date(2024, 1, 10), Date(2024, 2, 11)))
	assert.Equal(t, "0 dias", ServiceTimeText(Date(2024, 1, 1), Date(2024, 1, 1)))

	// month-end starts clamp to the shorter month
	assert.Equal(t, "1 mês e 2 dias", ServiceTimeText(Date(2024, 1, 31), Date(2024, 3, 2)))
	assert.Equal(t, "1 mês e 2 dias", ServiceTimeText(Date(2023, 1, 31), Date(2023, 3, 2)))
	assert.Equal(t, "1 mês", ServiceTimeText(Date(2024, 1, 31), Date(2024, 2, 29)))
	assert.Equal(t, "1 ano e 1 dia", ServiceTimeText(Date(2023, 8, 31), Date(2024, 9, 1)))
}

func TestDiff_MonthEnd(t *testing.T) {
	years, months, days := Diff(Date(2024, 1, 31), Date(2024, 4, 29))
	assert.Equal(t, 0, years)
	assert.Equal(t, 2, months)
	assert.Equal(t, 29, days)

	_, months, days = Diff(Date(2024, 1, 31), Date(2024, 4, 30))
	assert.Equal(t, 3, months)
	assert.Equal(t, 0, days)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "08/2024", MonthLabel(Date(2024, 8, 15)))
	assert.Equal(t, "15/07/2024", FormatDate(Date(2024, 7, 15)))
}
