package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
)

// DashboardMetrics resume os boletos pendentes para o painel: contagens de
// hoje e atrasados, e o valor somado do mês corrente.
type DashboardMetrics struct {
	DueToday            int     `json:"dueToday"`
	Overdue             int     `json:"overdue"`
	TotalValueThisMonth float64 `json:"totalValueThisMonth"`
}

func CalculateMetrics(boletos []entity.ClientBoleto, now time.Time) DashboardMetrics {
	today := entity.DateOnly(now)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)

	var m DashboardMetrics
	for _, b := range boletos {
		// Só boletos pendentes entram nas métricas.
		if b.Status != entity.BoletoPending {
			continue
		}

		due, ok := entity.ParseTime(b.DueDate)
		if !ok {
			continue
		}
		dueDay := entity.DateOnly(due)

		if dueDay.Equal(today) {
			m.DueToday++
		}
		if dueDay.Before(today) {
			m.Overdue++
		}
		if !due.Before(firstOfMonth) && due.Before(firstOfNextMonth) {
			m.TotalValueThisMonth += b.Value
		}
	}
	return m
}

// FormatBRL formata um valor em reais no padrão pt-BR (R$ 1.234,56).
func FormatBRL(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	whole := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(whole, ".", 2)

	intPart := parts[0]
	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := fmt.Sprintf("R$ %s,%s", grouped.String(), parts[1])
	if negative {
		out = "-" + out
	}
	return out
}
