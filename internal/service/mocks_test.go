package service

import (
	"context"

	"paragraph-byte/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
	calls []string
}

func (m *MockTextGenerator) Generate(ctx context.Context, model string, prompt string) domain.GenerationResult {
	m.calls = append(m.calls, model)
	args := m.Called(ctx, model, prompt)
	return args.Get(0).(domain.GenerationResult)
}

// --- MockPromptSelector ---
type MockPromptSelector struct {
	mock.Mock
}

func (m *MockPromptSelector) Select(difficulty domain.Difficulty) string {
	args := m.Called(difficulty)
	return args.String(0)
}
