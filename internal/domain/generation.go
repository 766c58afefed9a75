package domain

import "context"

// GenerationResult is the outcome of one generation attempt: either text
// produced by a model or an explicit absence. It never carries partial data.
type GenerationResult struct {
	Text  string
	Model string
	ok    bool
}

// Generated returns a successful result for model.
func Generated(model, text string) GenerationResult {
	return GenerationResult{Text: text, Model: model, ok: true}
}

// NoResult returns the absence marker.
func NoResult() GenerationResult {
	return GenerationResult{}
}

// OK reports whether the result carries generated text.
func (r GenerationResult) OK() bool {
	return r.ok && r.Text != ""
}

// TextGenerator issues a single request to one named model.
// Implementations swallow every failure and report it as NoResult.
type TextGenerator interface {
	Generate(ctx context.Context, model string, prompt string) GenerationResult
}

// PromptSelector picks a prompt for a difficulty.
type PromptSelector interface {
	Select(difficulty Difficulty) string
}

// OllamaModelPrefix marks model identifiers served by a local Ollama server
// rather than the Gemini API.
const OllamaModelPrefix = "ollama/"
