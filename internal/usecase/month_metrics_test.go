package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
)

func TestCalculateMetrics(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	boletos := []entity.ClientBoleto{
		dueBoleto("hoje", "2026-08-28", entity.BoletoPending),
		dueBoleto("vencido", "2026-08-15", entity.BoletoPending),
		dueBoleto("mes-que-vem", "2026-09-02", entity.BoletoPending),
		dueBoleto("enviado", "2026-08-28", entity.BoletoSent),
		dueBoleto("sem-data", "quando der", entity.BoletoPending),
	}

	m := CalculateMetrics(boletos, now)

	assert.Equal(t, 1, m.DueToday)
	assert.Equal(t, 1, m.Overdue)
	// Só "hoje" e "vencido" caem em agosto; enviado e setembro ficam fora.
	assert.InDelta(t, 200.0, m.TotalValueThisMonth, 0.001)
}

func TestCalculateMetricsEmpty(t *testing.T) {
	m := CalculateMetrics(nil, time.Now())
	assert.Zero(t, m.DueToday)
	assert.Zero(t, m.Overdue)
	assert.Zero(t, m.TotalValueThisMonth)
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "R$ 0,00"},
		{9.9, "R$ 9,90"},
		{450.5, "R$ 450,50"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
		{-99.9, "-R$ 99,90"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(tt.value))
	}
}
