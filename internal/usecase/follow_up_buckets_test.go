package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
)

func TestGetFollowUpBucket(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		followUp string
		want     FollowUpBucket
	}{
		{"atrasado", "2026-08-28T09:00:00Z", FollowUpOverdue},
		{"hoje à tarde", "2026-08-28T15:00:00Z", FollowUpToday},
		{"amanhã", "2026-08-29T09:00:00Z", FollowUpUpcoming},
		{"semana que vem", "2026-09-04T09:00:00Z", FollowUpUpcoming},
		{"sem follow-up", "", FollowUpNone},
		{"data ilegível", "qualquer hora", FollowUpNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := entity.Lead{NextFollowUp: tt.followUp}
			assert.Equal(t, tt.want, GetFollowUpBucket(l, now))
		})
	}
}

func TestFilterLeadsByBucket(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	leads := []entity.Lead{
		{ID: "1", NextFollowUp: "2026-08-27T10:00:00Z"},
		{ID: "2", NextFollowUp: "2026-08-28T15:00:00Z"},
		{ID: "3"},
	}

	assert.Len(t, FilterLeadsByBucket(leads, "all", now), 3)
	assert.Len(t, FilterLeadsByBucket(leads, "", now), 3)

	overdue := FilterLeadsByBucket(leads, "overdue", now)
	require.Len(t, overdue, 1)
	assert.Equal(t, "1", overdue[0].ID)

	none := FilterLeadsByBucket(leads, "none", now)
	require.Len(t, none, 1)
	assert.Equal(t, "3", none[0].ID)
}

func TestSortLeadsByFollowUp(t *testing.T) {
	leads := []entity.Lead{
		{ID: "sem", Name: "Zeca"},
		{ID: "tarde", Name: "Ana", NextFollowUp: "2026-08-30T10:00:00Z"},
		{ID: "cedo", Name: "Bia", NextFollowUp: "2026-08-28T10:00:00Z"},
		{ID: "sem2", Name: "Alice"},
	}

	sorted := SortLeadsByFollowUp(leads)

	ids := make([]string, len(sorted))
	for i, l := range sorted {
		ids[i] = l.ID
	}
	assert.Equal(t, []string{"cedo", "tarde", "sem2", "sem"}, ids)

	// A lista original não muda.
	assert.Equal(t, "sem", leads[0].ID)
}

func TestSearchLeads(t *testing.T) {
	leads := []entity.Lead{
		{ID: "1", Name: "Ana Clara", Phone: "5511988887777"},
		{ID: "2", Name: "Carlos", Phone: "5521977776666"},
	}

	byName := SearchLeads(leads, "ana")
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byPhone := SearchLeads(leads, "5521")
	require.Len(t, byPhone, 1)
	assert.Equal(t, "2", byPhone[0].ID)

	assert.Len(t, SearchLeads(leads, "  "), 2)
	assert.Empty(t, SearchLeads(leads, "ninguém"))
}
