package inference

// basePrompts holds the conversion instruction per diagram category
var basePrompts = map[string]string{
	"mechanics":      "Convert this handwritten physics diagram to TikZ code. Focus on forces, vectors, motion, and mechanical systems.",
	"electricity":    "Convert this handwritten electrical circuit or field diagram to TikZ code. Include proper circuit symbols and field lines.",
	"optics":         "Convert this handwritten optics diagram to TikZ code. Include light rays, lenses, mirrors, and optical components.",
	"thermodynamics": "Convert this handwritten thermodynamics diagram to TikZ code. Include heat flow, PV diagrams, and thermodynamic systems.",
	"quantum":        "Convert this handwritten quantum mechanics diagram to TikZ code. Include wave functions, energy levels, and quantum states.",
	"general":        "Convert this handwritten physics diagram to clean TikZ code.",
}

// BuildPrompt returns the model prompt for a diagram category, with the
// user's description appended as additional context when present
func BuildPrompt(category, description string) string {
	prompt, ok := basePrompts[category]
	if !ok {
		prompt = basePrompts["general"]
	}

	if description != "" {
		prompt += " Additional context: " + description
	}

	return prompt
}
