package theme

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestThemesFillEveryRole(t *testing.T) {
	seen := map[string]bool{}
	for _, th := range All {
		assert.False(t, seen[th.Name], "duplicate theme %q", th.Name)
		seen[th.Name] = true

		v := reflect.ValueOf(th)
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if f.Type != reflect.TypeOf(lipgloss.Color("")) {
				continue
			}
			assert.NotEmpty(t, v.Field(i).String(), "%s.%s", th.Name, f.Name)
		}
	}
}

func TestBudgetRolesStayDistinct(t *testing.T) {
	for _, th := range All {
		assert.NotEqual(t, th.Profit, th.Loss, th.Name)
		assert.NotEqual(t, th.Warning, th.Loss, th.Name)
		assert.NotEqual(t, th.Pending, th.Done, th.Name)
	}
}

func TestByNameFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "tokyo-night", ByName("tokyo-night").Name)
	assert.Equal(t, FlexokiDark.Name, ByName("solarized").Name)

	defer SetActive(FlexokiDark.Name)
	SetActive("terminal")
	assert.Equal(t, lipgloss.Color("1"), Active.Loss)
	assert.Equal(t, Active.Accent, Active.BorderAccent)
}
