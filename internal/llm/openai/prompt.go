package openai

import (
	_ "embed"
	"strings"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

//go:embed prompts/advisor.txt
var advisorPromptTemplate string

const defaultCategory = "general"

// BuildPrompt creates the chat messages for an advice request. The system turn
// carries the advisor instructions with the category substituted in; the user
// turn carries the question verbatim.
func BuildPrompt(question, category string) []Message {
	category = strings.TrimSpace(category)
	if category == "" {
		category = defaultCategory
	}
	system := strings.TrimSpace(strings.ReplaceAll(advisorPromptTemplate, "{category}", category))

	return []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: question},
	}
}
