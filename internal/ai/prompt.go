package ai

import (
	_ "embed"
)

//go:embed system_prompt.md
var systemPrompt string

// SystemPrompt returns the fixed system directive supplied with every request.
// It is constant for the whole run.
func SystemPrompt() string {
	return systemPrompt
}
