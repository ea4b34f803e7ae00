package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/enokjanuario/primeholding/internal/client/models"
)

func TestBRL(t *testing.T) {
	require.Equal(t, "R$1.234,56", BRL(decimal.NewFromFloat(1234.56)))
	require.Equal(t, "R$0,00", BRL(decimal.Zero))
	require.Equal(t, "R$1.000.000,00", BRL(decimal.NewFromInt(1000000)))
	require.Equal(t, "-R$15,50", BRL(decimal.NewFromFloat(-15.5)))
}

func TestSignedBRL(t *testing.T) {
	require.Equal(t, "+R$100,00", SignedBRL(decimal.NewFromInt(100)))
	require.Equal(t, "-R$100,00", SignedBRL(decimal.NewFromInt(-100)))
	require.Equal(t, "-", SignedBRL(decimal.Zero))
}

func TestPercent(t *testing.T) {
	require.Equal(t, "2,80%", Percent(decimal.NewFromFloat(2.8)))
	require.Equal(t, "0,00%", Percent(decimal.Zero))
	require.Equal(t, "-1,25%", Percent(decimal.NewFromFloat(-1.25)))
}

func TestDay(t *testing.T) {
	require.Equal(t, "29/08/2026", Day(models.NewDate(2026, time.August, 29)))
	require.Equal(t, "-", Day(models.Date{}))
}

func TestMoment(t *testing.T) {
	ts := time.Date(2026, time.August, 29, 14, 5, 0, 0, time.UTC)
	require.Equal(t, "29/08/2026 14:05", Moment(ts))
	require.Equal(t, "-", Moment(time.Time{}))
}

func TestTable_Aligns(t *testing.T) {
	var buf bytes.Buffer
	err := Table(&buf, []string{"ID", "Valor"}, [][]string{
		{"ap-1", "R$1.000,00"},
		{"ap-2", "R$50,00"},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "ID")
	require.Contains(t, out, "ap-2")
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
}
