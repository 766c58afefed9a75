package service

import (
	"context"
	"fmt"
	"testing"

	"paragraph-byte/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testModels = []string{"model-1", "model-2", "model-3", "model-4", "model-5"}

func TestFallbackChain_StopsAtFirstSuccess(t *testing.T) {
	for failing := 0; failing < len(testModels); failing++ {
		t.Run(fmt.Sprintf("%d failures first", failing), func(t *testing.T) {
			gen := new(MockTextGenerator)
			for i := 0; i < failing; i++ {
				gen.On("Generate", mock.Anything, testModels[i], "prompt").Return(domain.NoResult()).Once()
			}
			winner := testModels[failing]
			gen.On("Generate", mock.Anything, winner, "prompt").Return(domain.Generated(winner, "text from "+winner)).Once()

			result := NewFallbackChain(gen, zap.NewNop()).TryModelsInOrder(context.Background(), testModels, "prompt")

			assert.True(t, result.OK())
			assert.Equal(t, "text from "+winner, result.Text)
			assert.Equal(t, winner, result.Model)
			assert.Equal(t, testModels[:failing+1], gen.calls)
			gen.AssertNumberOfCalls(t, "Generate", failing+1)
			gen.AssertExpectations(t)
		})
	}
}

func TestFallbackChain_AllFail(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, "prompt").Return(domain.NoResult())

	core, logs := observer.New(zapcore.WarnLevel)
	result := NewFallbackChain(gen, zap.New(core)).TryModelsInOrder(context.Background(), testModels, "prompt")

	assert.False(t, result.OK())
	assert.Empty(t, result.Text)
	assert.Equal(t, testModels, gen.calls, "every model tried exactly once, in order")
	assert.Equal(t, len(testModels), logs.FilterMessage("Model failed to generate content").Len())
}

func TestFallbackChain_EmptySuccessIsFailure(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, "model-1", "prompt").Return(domain.Generated("model-1", ""))
	gen.On("Generate", mock.Anything, "model-2", "prompt").Return(domain.Generated("model-2", "real"))

	result := NewFallbackChain(gen, nil).TryModelsInOrder(context.Background(), testModels[:2], "prompt")

	assert.Equal(t, "real", result.Text)
	assert.Equal(t, []string{"model-1", "model-2"}, gen.calls)
}

func TestFallbackChain_NoModels(t *testing.T) {
	gen := new(MockTextGenerator)

	result := NewFallbackChain(gen, nil).TryModelsInOrder(context.Background(), nil, "prompt")

	assert.False(t, result.OK())
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestFallbackChain_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, "model-1", "prompt").
		Run(func(mock.Arguments) { cancel() }).
		Return(domain.NoResult())

	result := NewFallbackChain(gen, nil).TryModelsInOrder(ctx, testModels, "prompt")

	assert.False(t, result.OK())
	assert.Equal(t, []string{"model-1"}, gen.calls)
}
