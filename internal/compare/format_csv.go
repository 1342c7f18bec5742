package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

func (cf *CSVFormatter) Name() string { return "csv" }

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"category",
		"type",
		"notice_pay",
		"fgts_fine",
		"gross_total",
		"total_deductions",
		"net_total",
		"fgts_withdrawable",
		"total_to_receive",
		"unemployment_insurance",
		"receive_diff_from_base",
		"receive_pct_from_base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *ComparisonResult, kind string) []string {
	return []string{
		string(result.Category),
		kind,
		result.NoticePay.StringFixed(2),
		result.FGTSFine.StringFixed(2),
		result.GrossTotal.StringFixed(2),
		result.TotalDeductions.StringFixed(2),
		result.NetTotal.StringFixed(2),
		result.FGTSWithdrawable.StringFixed(2),
		result.TotalToReceive.StringFixed(2),
		strconv.FormatBool(result.Unemployment),
		result.ReceiveDiffFromBase.StringFixed(2),
		result.ReceivePctFromBase.StringFixed(2),
	}
}
