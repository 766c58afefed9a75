package router

import (
	"context"
	"testing"

	"paragraph-byte/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, model string, prompt string) domain.GenerationResult {
	args := m.Called(ctx, model, prompt)
	return args.Get(0).(domain.GenerationResult)
}

func TestRouter_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Gemini models go to primary", func(t *testing.T) {
		primary, local := new(MockGenerator), new(MockGenerator)
		primary.On("Generate", ctx, "gemini-1.5-flash", "p").Return(domain.Generated("gemini-1.5-flash", "text"))

		result := New(primary, local, nil).Generate(ctx, "gemini-1.5-flash", "p")

		assert.Equal(t, "text", result.Text)
		primary.AssertExpectations(t)
		local.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Prefixed models go to local", func(t *testing.T) {
		primary, local := new(MockGenerator), new(MockGenerator)
		local.On("Generate", ctx, "ollama/qwen3:0.6b", "p").Return(domain.Generated("ollama/qwen3:0.6b", "local"))

		result := New(primary, local, nil).Generate(ctx, "ollama/qwen3:0.6b", "p")

		assert.Equal(t, "local", result.Text)
		local.AssertExpectations(t)
		primary.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Prefixed model without local generator", func(t *testing.T) {
		primary := new(MockGenerator)

		result := New(primary, nil, nil).Generate(ctx, "ollama/qwen3:0.6b", "p")

		assert.False(t, result.OK())
		primary.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	})
}
