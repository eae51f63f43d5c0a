package cmd

import (
	"testing"

	"github.com/theirongolddev/presupuesto/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareTab(t *testing.T) {
	s := store.NewSeededSession()
	s.CurrentTab = store.TabSummary

	tab, ok := shareTab(s, nil)
	require.True(t, ok)
	assert.Equal(t, store.TabSummary, tab)

	tab, ok = shareTab(s, []string{"budget-flow"})
	require.True(t, ok)
	assert.Equal(t, store.TabBudgetFlow, tab)

	_, ok = shareTab(s, []string{"gantt"})
	assert.False(t, ok)
}

func TestUnknownNamesAreNoOps(t *testing.T) {
	assert.NoError(t, runShare(nil, []string{"gantt"}))
	assert.NoError(t, runExport(nil, []string{"gantt"}))

	flagExportTab = "gantt"
	defer func() { flagExportTab = "" }()
	assert.NoError(t, runExport(nil, nil))
}
