package domain

// PromptCatalog maps each difficulty to its ordered list of topics.
type PromptCatalog map[Difficulty][]string

// DefaultPromptCatalog returns the built-in topic lists.
// A fresh map is returned on every call so callers cannot mutate shared state.
func DefaultPromptCatalog() PromptCatalog {
	return PromptCatalog{
		DifficultyEasy: {
			"Write a short paragraph (2-3 sentences) for Pet animals.",
			"Describe a sunny day in the park.",
			"Write about your favorite food.",
			"What is your favorite ice cream?",
		},
		DifficultyMedium: {
			"Tell me about important personalities in Pakistan.",
			"Write a story about beauty of Pakistan.",
			"Tell me about adventure places in Pakistan?",
		},
		DifficultyHard: {
			"Write a complex paragraph on the history of artificial intelligence.",
			"Describe the process of quantum computing in detail.",
			"Write a paragraph on climate change and its global effects.",
			"Discuss the ethical implications of autonomous machines.",
		},
	}
}

// PromptTemplates holds the instruction wrapping each topic, keyed by difficulty.
// Each template carries a single %s verb for the topic.
var PromptTemplates = map[Difficulty]string{
	DifficultyEasy:   "Write a very short paragraph (2-3 lines max) on this topic: %s",
	DifficultyMedium: "Write a short paragraph (no more than 3 lines) on this topic: %s",
	DifficultyHard:   "Write a concise paragraph (max 3 lines) on this topic: %s",
}

// DefaultModels is the fallback chain used when no models are configured,
// in order of preference.
var DefaultModels = []string{
	"gemini-1.5-pro-001",
	"gemini-1.5-pro-002",
	"gemini-1.5-flash",
	"gemini-2.0-flash",
	"gemini-2.0-flash-001",
}
