package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		got, err := ParseTab(string(tab))
		require.NoError(t, err)
		assert.Equal(t, tab, got)
	}

	_, err := ParseTab("gantt")
	assert.ErrorContains(t, err, `unknown tab "gantt"`)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewSeededSession()
	snap := s.Snapshot()

	require.True(t, s.Personnel.Delete(1))
	require.NoError(t, s.SetProjectField("companyName", "ACME"))

	assert.Len(t, snap.Personnel, 3)
	assert.Empty(t, snap.Project.CompanyName)
	assert.Equal(t, "ACME", s.Project.CompanyName)
}
