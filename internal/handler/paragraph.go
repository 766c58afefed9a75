package handler

import (
	"errors"
	"fmt"

	"paragraph-byte/internal/domain"
	"paragraph-byte/internal/dto"
	"paragraph-byte/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ParagraphHandler handles paragraph generation HTTP requests
type ParagraphHandler struct {
	service service.ParagraphService
	logger  *zap.Logger
}

// NewParagraphHandler creates a new ParagraphHandler instance
func NewParagraphHandler(service service.ParagraphService, logger *zap.Logger) *ParagraphHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParagraphHandler{
		service: service,
		logger:  logger,
	}
}

// GetParagraph godoc
// @Summary Generate a paragraph
// @Description Picks a topic for the difficulty and returns the first paragraph any model produces
// @Tags paragraph
// @Produce json
// @Param difficulty query string false "Difficulty" Enums(easy, medium, hard) default(easy)
// @Success 200 {object} dto.ParagraphResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /paragraph [get]
func (h *ParagraphHandler) GetParagraph(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Recovered from panic while generating paragraph", zap.Any("panic", r))
			err = domain.NewInternalError("Failed to fetch paragraph", fmt.Errorf("%v", r))
		}
	}()

	difficulty := domain.ParseDifficulty(c.Query("difficulty"))

	paragraph, err := h.service.GetParagraph(c.UserContext(), difficulty)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return domainErr
		}
		return domain.NewInternalError("Failed to fetch paragraph", err)
	}

	return c.JSON(dto.ParagraphResponse{Paragraph: paragraph})
}
