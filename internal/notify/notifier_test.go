package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
	"github.com/xavierca1/lembrete-consorcio/internal/infra/queue"
)

type mockProducer struct {
	mock.Mock
}

func (m *mockProducer) PublishReminder(ctx context.Context, payload queue.ReminderPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestNotifierLeadDue(t *testing.T) {
	producer := new(mockProducer)
	producer.On("PublishReminder", mock.Anything, queue.ReminderPayload{
		Kind:     "lead",
		RecordID: "l1",
		Name:     "Ana",
		Phone:    "5511988887777",
		DueAt:    "2026-08-28T10:00:00Z",
	}).Return(nil)

	n := NewNotifier(producer)
	n.LeadDue(entity.Lead{
		ID:           "l1",
		Name:         "Ana",
		Phone:        "5511988887777",
		NextFollowUp: "2026-08-28T10:00:00Z",
	})

	producer.AssertExpectations(t)
}

func TestNotifierBoletoDueIncludesValue(t *testing.T) {
	producer := new(mockProducer)
	producer.On("PublishReminder", mock.Anything, mock.MatchedBy(func(p queue.ReminderPayload) bool {
		return p.Kind == "boleto" && p.RecordID == "b1" && p.Value == 450.5
	})).Return(nil)

	n := NewNotifier(producer)
	n.BoletoDue(entity.ClientBoleto{
		ID:      "b1",
		Name:    "Carlos",
		DueDate: "2026-08-28",
		Value:   450.5,
	})

	producer.AssertExpectations(t)
}

func TestNotifierSwallowsPublishError(t *testing.T) {
	producer := new(mockProducer)
	producer.On("PublishReminder", mock.Anything, mock.Anything).
		Return(errors.New("broker fora do ar"))

	n := NewNotifier(producer)
	assert.NotPanics(t, func() {
		n.LeadDue(entity.Lead{ID: "l1", Name: "Ana"})
	})
	producer.AssertExpectations(t)
}

func TestNotifierNilProducerIsNoop(t *testing.T) {
	n := NewNotifier(nil)
	assert.NotPanics(t, func() {
		n.LeadDue(entity.Lead{ID: "l1"})
		n.BoletoDue(entity.ClientBoleto{ID: "b1"})
	})
}
