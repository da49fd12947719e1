package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sprintdeck/domain/dto"
	"sprintdeck/domain/services"
	"sprintdeck/pkg/logger"
	"sprintdeck/pkg/utils"
)

type SprintHandler struct {
	sprintService services.SprintService
}

func NewSprintHandler(sprintService services.SprintService) *SprintHandler {
	return &SprintHandler{
		sprintService: sprintService,
	}
}

func (h *SprintHandler) CreateSprint(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateSprintRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	sprint, err := h.sprintService.Create(ctx, user.ID, &req)
	if err != nil {
		return h.sprintErrorResponse(c, uuid.Nil, err)
	}

	return utils.CreatedResponse(c, dto.SprintToSprintResponse(sprint))
}

func (h *SprintHandler) GetSprints(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	sprints, err := h.sprintService.List(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list sprints", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	resp := make([]dto.SprintListItem, 0, len(sprints))
	for _, sprint := range sprints {
		resp = append(resp, *dto.SprintToListItem(sprint))
	}

	return utils.SuccessResponse(c, resp)
}

// GetActiveSprint returns null data when the user has no ACTIVE sprint.
func (h *SprintHandler) GetActiveSprint(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	sprint, err := h.sprintService.GetActive(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get active sprint", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	if sprint == nil {
		return utils.SuccessResponse(c, nil)
	}

	return utils.SuccessResponse(c, dto.SprintToSprintResponse(sprint))
}

func (h *SprintHandler) GetSprint(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	sprintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid sprint ID")
	}

	sprint, err := h.sprintService.GetOne(ctx, sprintID, user.ID)
	if err != nil {
		return h.sprintErrorResponse(c, sprintID, err)
	}

	return utils.SuccessResponse(c, dto.SprintToSprintResponse(sprint))
}

func (h *SprintHandler) GetSprintMetrics(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	sprintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid sprint ID")
	}

	metrics, err := h.sprintService.GetMetrics(ctx, sprintID, user.ID)
	if err != nil {
		return h.sprintErrorResponse(c, sprintID, err)
	}

	return utils.SuccessResponse(c, metrics)
}

func (h *SprintHandler) UpdateSprint(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	sprintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid sprint ID")
	}

	var req dto.UpdateSprintRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	sprint, err := h.sprintService.Update(ctx, sprintID, user.ID, &req)
	if err != nil {
		return h.sprintErrorResponse(c, sprintID, err)
	}

	return utils.SuccessResponse(c, dto.SprintToSprintResponse(sprint))
}

// ActivateSprint makes the sprint the single ACTIVE one for the caller,
// completing whichever sprint held that slot before.
func (h *SprintHandler) ActivateSprint(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	sprintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid sprint ID")
	}

	sprint, err := h.sprintService.Activate(ctx, sprintID, user.ID)
	if err != nil {
		return h.sprintErrorResponse(c, sprintID, err)
	}

	return utils.SuccessResponse(c, dto.SprintToSprintResponse(sprint))
}

func (h *SprintHandler) DeleteSprint(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	sprintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid sprint ID")
	}

	if err := h.sprintService.Delete(ctx, sprintID, user.ID); err != nil {
		return h.sprintErrorResponse(c, sprintID, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Sprint deleted"})
}

func (h *SprintHandler) sprintErrorResponse(c *fiber.Ctx, sprintID uuid.UUID, err error) error {
	switch {
	case errors.Is(err, services.ErrSprintNotFound):
		return utils.NotFoundResponse(c, "Sprint not found")
	case errors.Is(err, services.ErrInvalidDate):
		return utils.BadRequestResponse(c, "Invalid date, expected YYYY-MM-DD or RFC3339")
	default:
		logger.ErrorContext(c.UserContext(), "Sprint operation failed", "sprint_id", sprintID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}
