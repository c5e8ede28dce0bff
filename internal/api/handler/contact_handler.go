package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blog-app/blog-api/internal/api/metrics"
	"github.com/blog-app/blog-api/internal/core/domain"
	"github.com/blog-app/blog-api/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /contact.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      200   {string}  string  "Message sent successfully"
// @Failure      400   {object}  errorResponse
// @Router       /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.service.Submit(c.Request().Context(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	metrics.ContactMessagesTotal.Inc()

	return c.JSON(http.StatusOK, "Message sent successfully")
}
