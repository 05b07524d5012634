package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentsParser parses the standard rent payments CSV:
//
//	date,tenant,amount,method,for_month,notes
//	2026-02-03,tenant_1a2b,1200000,mobile-money,2026-02,February rent
type PaymentsParser struct{}

const (
	paymentsDateFormat = "2006-01-02"
	paymentsNumFields  = 6
	colDate            = 0
	colTenant          = 1
	colAmount          = 2
	colMethod          = 3
	colForMonth        = 4
	colNotes           = 5
)

// Format returns the parser name.
func (p *PaymentsParser) Format() string { return "payments" }

// Parse reads a payments CSV and returns PaymentRows.
func (p *PaymentsParser) Parse(r io.Reader) ([]PaymentRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = paymentsNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading payments CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []PaymentRow
	for i, rec := range records[1:] {
		row, err := parsePaymentRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parsePaymentRow(rec []string) (PaymentRow, error) {
	date, err := time.Parse(paymentsDateFormat, rec[colDate])
	if err != nil {
		return PaymentRow{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return PaymentRow{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}
	if !amount.IsPositive() {
		return PaymentRow{}, fmt.Errorf("amount must be > 0, got %s", amount)
	}

	if rec[colTenant] == "" {
		return PaymentRow{}, fmt.Errorf("tenant is required")
	}

	forMonth := rec[colForMonth]
	if forMonth == "" {
		forMonth = date.Format("2006-01")
	}

	return PaymentRow{
		Date:      date,
		TenantRef: rec[colTenant],
		Amount:    amount,
		Method:    rec[colMethod],
		ForMonth:  forMonth,
		Notes:     rec[colNotes],
	}, nil
}
