package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayments = `date,tenant,amount,method,for_month,notes
2026-02-03,tenant_1a2b,1200000,mobile-money,2026-02,February rent
2026-02-05,tenant_3c4d,800000,cash,,
2026-02-28,tenant_1a2b,1200000,bank-transfer,2026-03,March in advance
`

func TestPaymentsParser_Parse(t *testing.T) {
	p := &PaymentsParser{}
	rows, err := p.Parse(strings.NewReader(samplePayments))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, "tenant_1a2b", first.TenantRef)
	assert.Equal(t, "1200000", first.Amount.String())
	assert.Equal(t, "mobile-money", first.Method)
	assert.Equal(t, "2026-02", first.ForMonth)
	assert.Equal(t, "February rent", first.Notes)
	assert.Equal(t, 2026, first.Date.Year())
	assert.Equal(t, 3, first.Date.Day())
}

func TestPaymentsParser_ForMonthDefaultsToDate(t *testing.T) {
	p := &PaymentsParser{}
	rows, err := p.Parse(strings.NewReader(samplePayments))
	require.NoError(t, err)

	assert.Equal(t, "2026-02", rows[1].ForMonth, "blank for_month falls back to payment month")
	assert.Equal(t, "2026-03", rows[2].ForMonth, "explicit for_month wins")
}

func TestPaymentsParser_EmptyFile(t *testing.T) {
	p := &PaymentsParser{}
	rows, err := p.Parse(strings.NewReader("date,tenant,amount,method,for_month,notes\n"))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestPaymentsParser_BadRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"bad date", "NOTADATE,tenant_1,100,cash,,", "parsing date"},
		{"bad amount", "2026-02-03,tenant_1,NOTANUMBER,cash,,", "parsing amount"},
		{"zero amount", "2026-02-03,tenant_1,0,cash,,", "amount must be > 0"},
		{"missing tenant", "2026-02-03,,100,cash,,", "tenant is required"},
	}
	header := "date,tenant,amount,method,for_month,notes\n"
	p := &PaymentsParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(strings.NewReader(header + tt.row + "\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPaymentsParser_Format(t *testing.T) {
	p := &PaymentsParser{}
	assert.Equal(t, "payments", p.Format())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&PaymentsParser{})
	p := r.Get("payments")
	require.NotNil(t, p)
	assert.Equal(t, "payments", p.Format())
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&PaymentsParser{})
	assert.NotNil(t, r.Get("Payments"))
	assert.NotNil(t, r.Get("PAYMENTS"))
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("payments"))
}

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "february.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "notes.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "february.csv", files[0].Name)
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	processedDir := filepath.Join(importDir, "processed")
	require.NoError(t, os.MkdirAll(processedDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processedDir, "old.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_EmptyDir(t *testing.T) {
	dir := t.TempDir()
	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "february.csv"), []byte("data"), 0o644))

	err := MarkProcessed(dir, "february.csv")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(importDir, "february.csv"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dir, "import", "processed", "february.csv"))
	assert.NoError(t, err)
}
