package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriteria_Normalize(t *testing.T) {
	c := Criteria{Name: "  Alpha ", ID: -3, Genre: "\tAction\n"}.Normalize()
	assert.Equal(t, Criteria{Name: "Alpha", ID: 0, Genre: "Action"}, c)

	c = Criteria{ID: 5}.Normalize()
	assert.Equal(t, int64(5), c.ID)
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.True(t, Criteria{Name: "  ", ID: -1}.IsEmpty())
	assert.False(t, Criteria{ID: 1}.IsEmpty())
	assert.False(t, Criteria{Genre: "x"}.IsEmpty())
}

func TestCriteria_String(t *testing.T) {
	assert.Equal(t, "", Criteria{}.String())
	assert.Equal(t, "name: a, genre: Action", Criteria{Name: " a ", Genre: "Action"}.String())
	assert.Equal(t, "name: a, id: 3, genre: Action", Criteria{Name: "a", ID: 3, Genre: "Action"}.String())
	assert.Equal(t, "id: 42", Criteria{ID: 42}.String())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"12", 12},
		{" 12 ", 12},
		{"0", 0},
		{"-4", 0},
		{"abc", 0},
		{"1.5", 0},
		{"99999999999999999999", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseID(tt.in), "input %q", tt.in)
	}
}
