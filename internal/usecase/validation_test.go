package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
	"github.com/xavierca1/lembrete-consorcio/internal/store"
)

func TestValidateCreateLeadInput(t *testing.T) {
	valid := store.CreateLeadInput{Name: "Ana", Status: entity.LeadNovo}
	assert.Empty(t, ValidateCreateLeadInput(valid))

	errs := ValidateCreateLeadInput(store.CreateLeadInput{Name: "  "})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	errs = ValidateCreateLeadInput(store.CreateLeadInput{
		Name:   strings.Repeat("a", 201),
		Status: "vip",
	})
	require.Len(t, errs, 2)

	errs = ValidateCreateLeadInput(store.CreateLeadInput{
		Name:         "Ana",
		NextFollowUp: "amanhã",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "nextFollowUp", errs[0].Field)
}

func TestValidateCreateBoletoInput(t *testing.T) {
	valid := store.CreateBoletoInput{Name: "Carlos", DueDate: "2026-09-10", Value: 100}
	assert.Empty(t, ValidateCreateBoletoInput(valid))

	errs := ValidateCreateBoletoInput(store.CreateBoletoInput{})
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["dueDate"])
	assert.True(t, fields["value"])

	errs = ValidateCreateBoletoInput(store.CreateBoletoInput{
		Name:    "Carlos",
		DueDate: "10/09/2026",
		Value:   100,
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "dueDate", errs[0].Field)

	errs = ValidateCreateBoletoInput(store.CreateBoletoInput{
		Name:    "Carlos",
		DueDate: "2026-09-10",
		Value:   100,
		Status:  "pago",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)
}
