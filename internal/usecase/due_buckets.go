package usecase

import (
	"sort"
	"time"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
)

// Classificação de boletos pela proximidade do vencimento.
type DueBucket string

const (
	DueOverdue  DueBucket = "overdue"
	DueToday    DueBucket = "today"
	DueTomorrow DueBucket = "tomorrow"
	DueNextDays DueBucket = "nextDays"
)

var DueBucketLabels = map[DueBucket]string{
	DueOverdue:  "Vencidos",
	DueToday:    "Vence Hoje",
	DueTomorrow: "Vence Amanhã",
	DueNextDays: "Próximos Dias",
}

type BucketedBoletos struct {
	Overdue  []entity.ClientBoleto `json:"overdue"`
	Today    []entity.ClientBoleto `json:"today"`
	Tomorrow []entity.ClientBoleto `json:"tomorrow"`
	NextDays []entity.ClientBoleto `json:"nextDays"`
}

// GetBucketForDate classifica um vencimento. Data ilegível cai em nextDays.
func GetBucketForDate(dueDate string, now time.Time) DueBucket {
	due, ok := entity.ParseTime(dueDate)
	if !ok {
		return DueNextDays
	}

	dueDay := entity.DateOnly(due)
	today := entity.DateOnly(now)
	tomorrow := today.AddDate(0, 0, 1)

	switch {
	case dueDay.Before(today):
		return DueOverdue
	case dueDay.Equal(today):
		return DueToday
	case dueDay.Equal(tomorrow):
		return DueTomorrow
	default:
		return DueNextDays
	}
}

// BucketBoletos agrupa por janela de vencimento, com filtro opcional de
// status ("all", "pending" ou "sent") e cada grupo ordenado do vencimento
// mais antigo para o mais novo.
func BucketBoletos(boletos []entity.ClientBoleto, filterMode string, now time.Time) BucketedBoletos {
	filtered := boletos
	switch filterMode {
	case "pending":
		filtered = FilterBoletosByStatus(boletos, entity.BoletoPending)
	case "sent":
		filtered = FilterBoletosByStatus(boletos, entity.BoletoSent)
	}

	buckets := BucketedBoletos{
		Overdue:  []entity.ClientBoleto{},
		Today:    []entity.ClientBoleto{},
		Tomorrow: []entity.ClientBoleto{},
		NextDays: []entity.ClientBoleto{},
	}

	for _, b := range filtered {
		switch GetBucketForDate(b.DueDate, now) {
		case DueOverdue:
			buckets.Overdue = append(buckets.Overdue, b)
		case DueToday:
			buckets.Today = append(buckets.Today, b)
		case DueTomorrow:
			buckets.Tomorrow = append(buckets.Tomorrow, b)
		default:
			buckets.NextDays = append(buckets.NextDays, b)
		}
	}

	for _, group := range [][]entity.ClientBoleto{buckets.Overdue, buckets.Today, buckets.Tomorrow, buckets.NextDays} {
		sortBoletosByDueDate(group)
	}
	return buckets
}

func FilterBoletosByStatus(boletos []entity.ClientBoleto, status entity.BoletoStatus) []entity.ClientBoleto {
	out := make([]entity.ClientBoleto, 0, len(boletos))
	for _, b := range boletos {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

func sortBoletosByDueDate(boletos []entity.ClientBoleto) {
	sort.SliceStable(boletos, func(i, j int) bool {
		ti, oki := entity.ParseTime(boletos[i].DueDate)
		tj, okj := entity.ParseTime(boletos[j].DueDate)
		if !oki || !okj {
			return oki
		}
		return ti.Before(tj)
	})
}
