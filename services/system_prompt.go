package services

import "google.golang.org/genai"

// DefaultSystemPrompt is sent as the system instruction when the caller
// does not supply one.
const DefaultSystemPrompt = "You are a concise, helpful assistant."

// SystemInstruction wraps prompt in the Content shape Gemini expects for a
// system instruction. An empty prompt yields nil so no instruction is sent.
func SystemInstruction(prompt string) *genai.Content {
	if prompt == "" {
		return nil
	}
	contents := genai.Text(prompt)
	if len(contents) == 0 {
		return nil
	}
	return contents[0]
}
