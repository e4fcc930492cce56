package perks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneName(t *testing.T) {
	tests := []struct {
		styleID int
		perkID  int
		want    string
	}{
		{8000, 8005, "Press the Attack"},
		{8000, 8299, "Last Stand"},
		{8100, 8112, "Electrocute"},
		{8100, 8106, "Ultimate Hunter"},
		{8200, 8226, "Manaflow Band"},
		{8300, 8345, "Biscuit Delivery"},
		{8400, 8473, "Bone Plating"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RuneName(tt.styleID, tt.perkID))
	}
}

func TestRuneNameUnresolved(t *testing.T) {
	// perk exists but in a different style
	assert.Equal(t, "", RuneName(8000, 8112))
	// unknown style
	assert.Equal(t, "", RuneName(1234, 8112))
	// unknown perk
	assert.Equal(t, "", RuneName(8200, 99999))
}
