package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	valid := []string{"euw1", "eun1", "ru", "oc1", "tr1", "na1", "la1", "la2", "kr", "br1", "jp1"}
	for _, code := range valid {
		assert.True(t, IsValid(code), code)
	}

	assert.True(t, IsValid("EUW1"), "validation is case-insensitive")
	assert.True(t, IsValid("Kr"))

	for _, code := range []string{"", "euw", "na", "pbe1", "sg2", "americas"} {
		assert.False(t, IsValid(code), code)
	}
}

func TestRoute(t *testing.T) {
	tests := []struct {
		code string
		want Routing
	}{
		{"euw1", Europe},
		{"eun1", Europe},
		{"ru", Europe},
		{"oc1", Europe},
		{"tr1", Europe},
		{"na1", Americas},
		{"la1", Americas},
		{"la2", Americas},
		{"kr", Asia},
		{"br1", Asia},
		{"jp1", Asia},
		{"NA1", Americas},
	}

	for _, tt := range tests {
		got, ok := Route(tt.code)
		assert.True(t, ok, tt.code)
		assert.Equal(t, tt.want, got, tt.code)
	}

	_, ok := Route("sg2")
	assert.False(t, ok)
	_, ok = Route("")
	assert.False(t, ok)
}
