package render

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func labels(buttons []PageButton) []string {
	out := make([]string, len(buttons))
	for i, b := range buttons {
		out[i] = b.Label()
	}
	return out
}

func TestPageButtons(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  []string
	}{
		{"no pages", 0, nil},
		{"single page", 1, nil},
		{"few pages", 3, []string{"1", "2", "3"}},
		{"five pages", 5, []string{"1", "2", "3", "4", "5"}},
		{"many pages", 9, []string{"1", "2", "3", "4", "...", "Last"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageButtons(tt.total, 1)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, labels(got))
		})
	}
}

func TestPageButtons_ActivePage(t *testing.T) {
	buttons := PageButtons(9, 9)
	last := buttons[len(buttons)-1]
	assert.Equal(t, PageLast, last.Kind)
	assert.Equal(t, 9, last.Page)
	assert.True(t, last.Active)
	assert.False(t, buttons[0].Active)

	buttons = PageButtons(3, 2)
	assert.True(t, buttons[1].Active)
}

func TestRenderPaging(t *testing.T) {
	assert.Empty(t, RenderPaging(1, 1))
	assert.Equal(t, "[1] [2] [3] [4] ... [Last]", ansi.Strip(RenderPaging(12, 2)))
}
