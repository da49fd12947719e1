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

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	tasks, total, err := h.taskService.GetTasks(ctx, user.ID, page, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	resp := dto.TaskListResponse{
		Tasks: make([]dto.TaskResponse, 0, len(tasks)),
		Meta: dto.PaginationMeta{
			Total:    total,
			Page:     page,
			Limit:    limit,
			LastPage: int((total + int64(limit) - 1) / int64(limit)),
		},
	}
	for _, task := range tasks {
		resp.Tasks = append(resp.Tasks, *dto.TaskToTaskResponse(task))
	}

	return utils.SuccessResponse(c, resp)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.UpdateTask(ctx, taskID, user.ID, &req)
	if err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) ToggleTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.ToggleTask(ctx, taskID, user.ID)
	if err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, taskID, user.ID); err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Task deleted"})
}

func (h *TaskHandler) GetTaskDetails(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTaskWithDetails(ctx, taskID, user.ID)
	if err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetDailyReport(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	report, err := h.taskService.GetDailyReport(ctx, user.ID, c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return utils.BadRequestResponse(c, "Invalid date, expected YYYY-MM-DD")
		}
		logger.ErrorContext(ctx, "Failed to build daily report", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, report)
}

func (h *TaskHandler) CreateNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	note, err := h.taskService.CreateNote(ctx, taskID, user.ID, &req)
	if err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	return utils.CreatedResponse(c, dto.NoteToNoteResponse(note))
}

func (h *TaskHandler) GetNotes(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	notes, err := h.taskService.GetNotes(ctx, taskID, user.ID)
	if err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	resp := make([]dto.TaskNoteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, *dto.NoteToNoteResponse(note))
	}

	return utils.SuccessResponse(c, resp)
}

func (h *TaskHandler) UpdateNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	var req dto.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	note, err := h.taskService.UpdateNote(ctx, noteID, taskID, user.ID, &req)
	if err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	return utils.SuccessResponse(c, dto.NoteToNoteResponse(note))
}

func (h *TaskHandler) DeleteNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	if err := h.taskService.DeleteNote(ctx, noteID, taskID, user.ID); err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Note deleted"})
}

func (h *TaskHandler) CreateTimeEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.CreateTimeEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	entry, err := h.taskService.CreateTimeEntry(ctx, taskID, user.ID, &req)
	if err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	return utils.CreatedResponse(c, dto.TimeEntryToResponse(entry))
}

func (h *TaskHandler) GetTimeEntries(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	entries, err := h.taskService.GetTimeEntries(ctx, taskID, user.ID)
	if err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	resp := make([]dto.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, *dto.TimeEntryToResponse(entry))
	}

	return utils.SuccessResponse(c, resp)
}

func (h *TaskHandler) UpdateTimeEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	entryID, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid time entry ID")
	}

	var req dto.UpdateTimeEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	entry, err := h.taskService.UpdateTimeEntry(ctx, entryID, taskID, user.ID, &req)
	if err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	return utils.SuccessResponse(c, dto.TimeEntryToResponse(entry))
}

func (h *TaskHandler) DeleteTimeEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	entryID, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid time entry ID")
	}

	if err := h.taskService.DeleteTimeEntry(ctx, entryID, taskID, user.ID); err != nil {
		return h.taskErrorResponse(c, taskID, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Time entry deleted"})
}

// taskErrorResponse translates service errors for every task-scoped route.
// Ownership failures surface as 404, never 403.
func (h *TaskHandler) taskErrorResponse(c *fiber.Ctx, taskID uuid.UUID, err error) error {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, services.ErrNoteNotFound):
		return utils.NotFoundResponse(c, "Note not found")
	case errors.Is(err, services.ErrTimeEntryNotFound):
		return utils.NotFoundResponse(c, "Time entry not found")
	case errors.Is(err, services.ErrInvalidDate):
		return utils.BadRequestResponse(c, "Invalid timestamp, expected RFC3339")
	default:
		logger.ErrorContext(c.UserContext(), "Task operation failed", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}
