package reindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchIndex(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantRaw string
		wantOK  bool
	}{
		{"numeric and letter", "01-A-intro.md", "01-A", true},
		{"alphanumeric second group", "12-b3-setup-guide.md", "12-b3", true},
		{"uppercase first group", "AB-cd-notes.md", "AB-cd", true},
		{"extra hyphens stay in rest", "01-A-B-c.md", "01-A", true},
		{"empty rest", "01-A-.md", "01-A", true},
		{"missing third segment", "01-A.md", "", false},
		{"lowercase first group", "1a-B-intro.md", "", false},
		{"wrong extension", "01-A-intro.txt", "", false},
		{"uppercase extension", "01-A-intro.MD", "", false},
		{"trailing suffix", "01-A-intro.md.bak", "", false},
		{"plain name", "index.md", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, ok := MatchIndex(tt.file)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRaw, raw)
		})
	}
}

func TestNormalizeIndex(t *testing.T) {
	assert.Equal(t, "07.B", NormalizeIndex("07-B"))
	assert.Equal(t, "01.A", NormalizeIndex("01-A"))
	assert.Equal(t, "AB.cd", NormalizeIndex("AB-cd"))
}

func TestIndexForFile(t *testing.T) {
	idx, ok := IndexForFile("07-B-closing-notes.md")
	assert.True(t, ok)
	assert.Equal(t, "07.B", idx)

	_, ok = IndexForFile("notes.md")
	assert.False(t, ok)
}
