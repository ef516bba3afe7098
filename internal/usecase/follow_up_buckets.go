package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
)

// Classificação de leads pela janela do follow-up, usada na listagem.
type FollowUpBucket string

const (
	FollowUpOverdue  FollowUpBucket = "overdue"
	FollowUpToday    FollowUpBucket = "today"
	FollowUpUpcoming FollowUpBucket = "upcoming"
	FollowUpNone     FollowUpBucket = "none"
)

var FollowUpBucketLabels = map[FollowUpBucket]string{
	FollowUpOverdue:  "Atrasados",
	FollowUpToday:    "Hoje",
	FollowUpUpcoming: "Próximos",
	FollowUpNone:     "Sem Follow-up",
}

func GetFollowUpBucket(lead entity.Lead, now time.Time) FollowUpBucket {
	followUp, ok := entity.ParseTime(lead.NextFollowUp)
	if !ok {
		return FollowUpNone
	}

	todayStart := entity.DateOnly(now)
	todayEnd := todayStart.AddDate(0, 0, 1)

	if followUp.Before(now) {
		return FollowUpOverdue
	}
	if !followUp.Before(todayStart) && followUp.Before(todayEnd) {
		return FollowUpToday
	}
	return FollowUpUpcoming
}

// FilterLeadsByBucket filtra pela classificação; bucket "all" devolve tudo.
func FilterLeadsByBucket(leads []entity.Lead, bucket string, now time.Time) []entity.Lead {
	if bucket == "" || bucket == "all" {
		return leads
	}
	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if string(GetFollowUpBucket(l, now)) == bucket {
			out = append(out, l)
		}
	}
	return out
}

// SortLeadsByFollowUp ordena por follow-up crescente; leads sem follow-up
// vão para o fim, desempatando por nome.
func SortLeadsByFollowUp(leads []entity.Lead) []entity.Lead {
	out := make([]entity.Lead, len(leads))
	copy(out, leads)

	sort.SliceStable(out, func(i, j int) bool {
		ti, oki := entity.ParseTime(out[i].NextFollowUp)
		tj, okj := entity.ParseTime(out[j].NextFollowUp)
		switch {
		case !oki && !okj:
			return out[i].Name < out[j].Name
		case !oki:
			return false
		case !okj:
			return true
		default:
			return ti.Before(tj)
		}
	})
	return out
}

// SearchLeads filtra por nome (case-insensitive) ou telefone.
func SearchLeads(leads []entity.Lead, query string) []entity.Lead {
	query = strings.TrimSpace(query)
	if query == "" {
		return leads
	}

	lower := strings.ToLower(query)
	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if strings.Contains(strings.ToLower(l.Name), lower) || strings.Contains(l.Phone, query) {
			out = append(out, l)
		}
	}
	return out
}
