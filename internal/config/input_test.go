package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"github.com/rgehrsitz/cltcalc/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	request, err := NewInputParser().LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, request)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	path := writeFile(t, "invalid.yaml", "invalid: yaml: content: [unclosed")

	request, err := NewInputParser().LoadFromFile(path)

	assert.Error(t, err)
	assert.Nil(t, request)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadFromFile_Rescission(t *testing.T) {
	path := writeFile(t, "rescission.yaml", `
calculator: rescission
rescission:
  salary: 3000.00
  admission_date: 2023-01-01
  dismissal_date: 2024-07-15
  category: no_cause
  fgts_balance: 5000
  dependents: 1
`)

	request, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.CalculatorRescission, request.Calculator)
	require.NotNil(t, request.Rescission)
	assert.Equal(t, "3000", request.Rescission.Salary.String())
	assert.Equal(t, "5000", request.Rescission.FGTSBalance.String())
	assert.True(t, request.Rescission.AdmissionDate.Equal(dateutil.Date(2023, 1, 1)))
	assert.True(t, request.Rescission.DismissalDate.Equal(dateutil.Date(2024, 7, 15)))
	assert.Equal(t, domain.TerminationNoCause, request.Rescission.Category)
	assert.Equal(t, 1, request.Rescission.Dependents)
	assert.Nil(t, request.Vacation)
}

func TestInputParser_Parse_OptionalMonthsWorked(t *testing.T) {
	parser := NewInputParser()

	request, err := parser.Parse([]byte(`
calculator: thirteenth
thirteenth:
  salary: 3000
  months_worked: 0
`))
	require.NoError(t, err)
	require.NotNil(t, request.Thirteenth.MonthsWorked, "an explicit zero must be kept")
	assert.Equal(t, 0, *request.Thirteenth.MonthsWorked)

	request, err = parser.Parse([]byte(`
calculator: thirteenth
thirteenth:
  salary: 3000
  admission_date: 2024-03-20
  reference_date: 2024-12-20
`))
	require.NoError(t, err)
	assert.Nil(t, request.Thirteenth.MonthsWorked)
}

func TestInputParser_Parse_UnemploymentSalaries(t *testing.T) {
	request, err := NewInputParser().Parse([]byte(`
calculator: unemployment
unemployment:
  last_salaries: [2000, 2200.50, 2400]
  months_worked: 15
  has_formal_registration: true
  dismissal_reason: no_cause
  calculation_date: 2024-07-15
`))
	require.NoError(t, err)
	require.Len(t, request.Unemployment.LastSalaries, 3)
	assert.True(t, request.Unemployment.LastSalaries[1].Equal(decimal.RequireFromString("2200.50")))
}

func TestInputParser_Parse_RejectsUnknownFields(t *testing.T) {
	_, err := NewInputParser().Parse([]byte(`
calculator: withholding
withholding:
  gross_salry: 3000
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gross_salry")
}

func TestInputParser_ValidateRequest(t *testing.T) {
	tests := []struct {
		name     string
		document string
		message  string
	}{
		{
			name:     "missing calculator",
			document: "withholding:\n  gross_salary: 3000\n",
			message:  "calculator is required",
		},
		{
			name:     "unknown calculator",
			document: "calculator: payroll\n",
			message:  "unknown calculator",
		},
		{
			name:     "missing section",
			document: "calculator: vacation\n",
			message:  "vacation section is required",
		},
		{
			name: "dismissal before admission",
			document: `
calculator: rescission
rescission:
  salary: 3000
  admission_date: 2024-01-01
  dismissal_date: 2023-01-01
  category: no_cause
`,
			message: "dismissal_date cannot precede admission_date",
		},
		{
			name: "unknown termination category",
			document: `
calculator: rescission
rescission:
  salary: 3000
  admission_date: 2023-01-01
  dismissal_date: 2024-01-01
  category: retirement
`,
			message: "unknown termination category",
		},
		{
			name: "exposed hours above total",
			document: `
calculator: hazardous
premium:
  base_salary: 3000
  applies: true
  exposed_hours: 240
  total_hours: 220
`,
			message: "cannot exceed total_hours",
		},
		{
			name: "unknown unhealthy grade",
			document: `
calculator: unhealthy
premium:
  base_salary: 3000
  applies: true
  unhealthy_grade: extreme
`,
			message: "unknown unhealthy_grade",
		},
		{
			name: "thirteenth without months or reference date",
			document: `
calculator: thirteenth_advance
thirteenth:
  salary: 3000
`,
			message: "either months_worked or reference_date",
		},
		{
			name: "fgts without months",
			document: `
calculator: fgts
fgts:
  salary: 3000
`,
			message: "months must be positive",
		},
		{
			name: "unemployment without salary",
			document: `
calculator: unemployment
unemployment:
  months_worked: 12
  calculation_date: 2024-07-15
`,
			message: "average_salary or last_salaries",
		},
		{
			name: "negative vacation days",
			document: `
calculator: vacation
vacation:
  salary: 3000
  admission_date: 2022-01-01
  vacation_start_date: 2024-01-01
  days_requested: -5
`,
			message: "cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.document))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "request validation failed")
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestInputParser_LoadFromFileWithRegulatory(t *testing.T) {
	requestPath := writeFile(t, "withholding.yaml", "calculator: withholding\nwithholding:\n  gross_salary: 3000\n")
	rulesPath := writeFile(t, "regulatory.yaml", "minimum_wage: 1518.00\n")

	request, rules, err := NewInputParser().LoadFromFileWithRegulatory(requestPath, rulesPath)
	require.NoError(t, err)
	assert.Equal(t, domain.CalculatorWithholding, request.Calculator)
	assert.Equal(t, "1518", rules.MinimumWage.String())
}
