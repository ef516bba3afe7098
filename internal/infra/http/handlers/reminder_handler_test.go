package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
	"github.com/xavierca1/lembrete-consorcio/internal/reminder"
)

func newLeadReminderHandler() (*ReminderHandler[entity.Lead], *reminder.Poller[entity.Lead]) {
	poller := reminder.NewPoller(reminder.Config[entity.Lead]{
		Eligible: reminder.LeadEligible,
		DueAt:    reminder.LeadDueAt,
		Now:      func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) },
	})
	return NewReminderHandler(poller, "lead"), poller
}

func TestReminderHandlerActiveEmpty(t *testing.T) {
	h, _ := newLeadReminderHandler()

	rec := httptest.NewRecorder()
	h.HandleActive(rec, httptest.NewRequest(http.MethodGet, "/reminders/leads/active", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"activeReminder":null}`, rec.Body.String())
}

func TestReminderHandlerActiveWithReminder(t *testing.T) {
	h, poller := newLeadReminderHandler()
	poller.SetRecords([]entity.Lead{{
		ID:           "ana",
		Name:         "Ana",
		NextFollowUp: "2026-08-28T09:00:00Z",
	}})

	rec := httptest.NewRecorder()
	h.HandleActive(rec, httptest.NewRequest(http.MethodGet, "/reminders/leads/active", nil))

	var resp struct {
		ActiveReminder *entity.Lead `json:"activeReminder"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.ActiveReminder)
	assert.Equal(t, "ana", resp.ActiveReminder.ID)
}

func TestReminderHandlerDismiss(t *testing.T) {
	h, poller := newLeadReminderHandler()
	poller.SetRecords([]entity.Lead{{
		ID:           "ana",
		NextFollowUp: "2026-08-28T09:00:00Z",
	}})

	rec := httptest.NewRecorder()
	h.HandleDismiss(rec, httptest.NewRequest(http.MethodPost, "/reminders/leads/dismiss", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := poller.Active()
	assert.False(t, ok)
}
