package handler

import (
	"github.com/gofiber/fiber/v2"

	"journalfetch/internal/service"
)

type toggleRequest struct {
	Value *bool `json:"value"`
}

// GetOnboarding godoc
// @Summary Onboarding popup state
// @Tags onboarding
// @Produce json
// @Success 200 {object} model.Popup
// @Router /onboarding [get]
func GetOnboarding(onboarding service.Onboarding) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(onboarding.Popup())
	}
}

// SetDontShowAgain godoc
// @Summary Set the "don't show again" toggle
// @Description Held in memory until the popup is dismissed.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body toggleRequest true "toggle value"
// @Success 200 {object} model.Popup
// @Failure 400 {object} errorPayload
// @Router /onboarding/dont-show-again [put]
func SetDontShowAgain(onboarding service.Onboarding) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req toggleRequest
		if err := c.BodyParser(&req); err != nil || req.Value == nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "value is required")
		}
		return c.JSON(onboarding.SetDontShowAgain(*req.Value))
	}
}

// DismissOnboarding godoc
// @Summary Dismiss the onboarding popup
// @Tags onboarding
// @Produce json
// @Success 200 {object} model.Popup
// @Router /onboarding/dismiss [post]
func DismissOnboarding(onboarding service.Onboarding) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(onboarding.Dismiss(c.UserContext()))
	}
}
