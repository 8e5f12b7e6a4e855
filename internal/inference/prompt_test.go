package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		description string
		contains    string
	}{
		{
			name:     "mechanics prompt",
			category: "mechanics",
			contains: "forces, vectors, motion",
		},
		{
			name:     "electricity prompt",
			category: "electricity",
			contains: "circuit symbols",
		},
		{
			name:     "quantum prompt",
			category: "quantum",
			contains: "wave functions, energy levels",
		},
		{
			name:     "unknown category uses general prompt",
			category: "astrophysics",
			contains: "clean TikZ code",
		},
		{
			name:        "description appended as context",
			category:    "optics",
			description: "converging lens with two rays",
			contains:    "Additional context: converging lens with two rays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(tt.category, tt.description)
			assert.Contains(t, prompt, tt.contains)
		})
	}
}

func TestBuildPrompt_NoDescription(t *testing.T) {
	prompt := BuildPrompt("general", "")
	assert.NotContains(t, prompt, "Additional context")
}
