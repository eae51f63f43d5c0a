package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/presupuesto/internal/model"
)

func TestAddAssignsMaxPlusOne(t *testing.T) {
	var c PersonnelList

	id, err := c.Add(model.Personnel{Role: "Consultor Sr", Salary: 55000, Weeks: 12})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = c.Add(model.Personnel{ID: 99, Role: "Analista Jr", Salary: 30000, Weeks: 12})
	require.NoError(t, err)
	assert.Equal(t, 2, id, "draft id must be ignored")

	id, err = c.Add(model.Personnel{Role: "Gerente OP", Salary: 25000, Weeks: 12})
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	var c InsuranceList
	for i := 0; i < 3; i++ {
		_, err := c.Add(model.Insurance{Type: "Médico", Role: "Todos", Amount: 100})
		require.NoError(t, err)
	}

	require.True(t, c.Delete(2))
	id, err := c.Add(model.Insurance{Type: "Vida", Role: "Todos", Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, 4, id, "id 2 was deleted but max is still 3")

	// Deleting the max makes max+1 coincide with the deleted id.
	require.True(t, c.Delete(4))
	id, err = c.Add(model.Insurance{Type: "Vida", Role: "Todos", Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	var ids []int
	for _, r := range c.List() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{1, 3, 4}, ids, "remaining ids keep insertion order and are never shifted")
}

func TestAddRejectsInvalidDraft(t *testing.T) {
	var c ExpenseList
	_, err := c.Add(model.Expense{Type: "Transporte", Detail: "Taxi", UnitCost: 100, Quantity: 2})
	require.NoError(t, err)

	before := c.List()
	_, err = c.Add(model.Expense{Type: "Transporte", Detail: "", UnitCost: 100})

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "detail", verr.Field)
	assert.Equal(t, before, c.List())

	_, err = c.Add(model.Expense{Type: "Transporte", Detail: "Taxi", UnitCost: -3})
	require.Error(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestAddDerivesTotals(t *testing.T) {
	var c FlightList
	id, err := c.Add(model.Flight{Role: "Consultor Jr", Origin: "A", Destination: "B", Frequency: 2, AuthorizedAmount: 5000, TotalAmount: 1})
	require.NoError(t, err)

	f, ok := c.Get(id)
	require.True(t, ok)
	assert.Equal(t, 10000.0, f.TotalAmount)
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	var c ExpenseList
	_, err := c.Add(model.Expense{Type: "Hospedaje", Detail: "Hotel", UnitCost: 8000, Quantity: 20})
	require.NoError(t, err)

	before := c.List()
	require.NoError(t, c.Update(42, "quantity", 1))
	assert.Equal(t, before, c.List())

	assert.False(t, c.Delete(42))
	assert.Equal(t, before, c.List())
}

func TestUpdateKeepsExpenseTotalConsistent(t *testing.T) {
	var c ExpenseList
	id, err := c.Add(model.Expense{Type: "Hospedaje", Detail: "Hotel", UnitCost: 8000, Quantity: 20})
	require.NoError(t, err)

	steps := []struct {
		field string
		value any
	}{
		{"quantity", 0},
		{"unitCost", 0},
		{"unitCost", 1234.5},
		{"quantity", 3},
		{"quantity", "7"},
	}
	for _, s := range steps {
		require.NoError(t, c.Update(id, s.field, s.value))
		e, _ := c.Get(id)
		assert.Equal(t, e.UnitCost*e.Quantity, e.Total, "after %s=%v", s.field, s.value)
	}
}

func TestUpdateRejectedValueLeavesRow(t *testing.T) {
	var c PerDiemList
	id, err := c.Add(model.PerDiem{Role: "Consultor Jr", WeeklyAmount: 1500, Weeks: 8})
	require.NoError(t, err)

	before := c.List()
	err = c.Update(id, "weeks", []int{1})
	assert.ErrorIs(t, err, model.ErrInvalidValue)
	assert.Equal(t, before, c.List())

	err = c.Update(id, "nope", 1)
	assert.ErrorIs(t, err, model.ErrUnknownField)
}

func TestListIsASnapshot(t *testing.T) {
	var c PersonnelList
	_, err := c.Add(model.Personnel{Role: "Consultor Sr", Salary: 55000, Weeks: 12})
	require.NoError(t, err)

	rows := c.List()
	rows[0].Salary = 1
	got, _ := c.Get(1)
	assert.Equal(t, 55000.0, got.Salary)
}

func TestSeededSession(t *testing.T) {
	s := NewSeededSession()
	snap := s.Snapshot()

	assert.Len(t, snap.Personnel, 3)
	assert.Len(t, snap.Expenses, 3)
	assert.Len(t, snap.BudgetBlocks, 2)
	assert.Equal(t, 160000.0, snap.Expenses[1].Total)
	assert.Equal(t, 12000.0, snap.PerDiems[0].TotalCost)
	assert.Equal(t, TabPersonnel, s.CurrentTab)
	assert.Equal(t, "Flujo Presupuestal", TabBudgetFlow.DisplayName())
}
