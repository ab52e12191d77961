package llm

// DefaultAlias is used when a request names no model or an unknown one.
const DefaultAlias = "gpt-4"

// Aliases maps the short model names exposed by the API to OpenRouter ids.
var Aliases = map[string]string{
	"gemini-pro":   "google/gemini-pro-1.5",
	"gemini-flash": "google/gemini-flash-1.5-8b",
	"claude-3":     "anthropic/claude-3.5-sonnet",
	"gpt-4":        "openai/gpt-4-turbo",
	"llama-3":      "meta-llama/llama-3-8b-instruct",
}

// Resolve returns the OpenRouter model id for an alias, falling back to the
// default model for unknown aliases.
func Resolve(alias string) string {
	if id, ok := Aliases[alias]; ok {
		return id
	}
	return Aliases[DefaultAlias]
}
