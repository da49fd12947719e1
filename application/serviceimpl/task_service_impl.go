package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sprintdeck/domain/dto"
	"sprintdeck/domain/models"
	"sprintdeck/domain/repositories"
	"sprintdeck/domain/services"
	"sprintdeck/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo   repositories.TaskRepository
	noteRepo   repositories.NoteRepository
	entryRepo  repositories.TimeEntryRepository
	sprintRepo repositories.SprintRepository
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	noteRepo repositories.NoteRepository,
	entryRepo repositories.TimeEntryRepository,
	sprintRepo repositories.SprintRepository,
) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:   taskRepo,
		noteRepo:   noteRepo,
		entryRepo:  entryRepo,
		sprintRepo: sprintRepo,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	now := time.Now()
	task := &models.Task{
		ID:             uuid.New(),
		Title:          req.Title,
		Description:    req.Description,
		Priority:       models.PriorityMedium,
		TaskLink:       req.TaskLink,
		SprintID:       req.SprintID,
		EstimatedHours: req.EstimatedHours,
		UserID:         userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.Points != nil {
		task.Points = *req.Points
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)

	// reload with the sprint summary joined
	return s.taskRepo.GetByID(ctx, task.ID, userID)
}

func (s *TaskServiceImpl) GetTasks(ctx context.Context, userID uuid.UUID, page, limit int) ([]*models.Task, int64, error) {
	offset := (page - 1) * limit

	tasks, err := s.taskRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.taskRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// applyTaskPatch folds the supplied fields into the task and derives
// completedAt: set on the false→true transition, cleared on true→false.
// Pure over (task, req, now) so the rule is testable in isolation.
func applyTaskPatch(task *models.Task, req *dto.UpdateTaskRequest, now time.Time) {
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Points != nil {
		task.Points = *req.Points
	}
	if req.TaskLink != nil {
		task.TaskLink = req.TaskLink
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.SprintID != nil {
		task.SprintID = req.SprintID
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = req.EstimatedHours
	}
	if req.Completed != nil && *req.Completed != task.Completed {
		task.Completed = *req.Completed
		if task.Completed {
			completedAt := now
			task.CompletedAt = &completedAt
		} else {
			task.CompletedAt = nil
		}
	}
	task.UpdatedAt = now
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID, userID)
	if err != nil {
		return nil, services.ErrTaskNotFound
	}

	applyTaskPatch(task, req, time.Now())

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID)

	return s.taskRepo.GetByID(ctx, taskID, userID)
}

func (s *TaskServiceImpl) ToggleTask(ctx context.Context, taskID, userID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID, userID)
	if err != nil {
		return nil, services.ErrTaskNotFound
	}

	toggled := !task.Completed
	applyTaskPatch(task, &dto.UpdateTaskRequest{Completed: &toggled}, time.Now())

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}

	logger.InfoContext(ctx, "Task completion toggled", "task_id", taskID, "completed", toggled)

	return s.taskRepo.GetByID(ctx, taskID, userID)
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, taskID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	return nil
}

func (s *TaskServiceImpl) GetTaskWithDetails(ctx context.Context, taskID, userID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetWithDetails(ctx, taskID, userID)
	if err != nil {
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) GetDailyReport(ctx context.Context, userID uuid.UUID, date string) (*dto.DailyReportResponse, error) {
	day := time.Now()
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, services.ErrInvalidDate
		}
		day = parsed
	}

	// the caller's local day window [00:00:00.000, 23:59:59.999]
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	to := from.Add(24*time.Hour - time.Millisecond)

	completed, err := s.taskRepo.ListCompletedBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	report := &dto.DailyReportResponse{
		Date:           from.Format("2006-01-02"),
		CompletedTasks: make([]dto.ReportCompletedTask, 0, len(completed)),
		PendingTasks:   []dto.ReportPendingTask{},
	}

	for _, task := range completed {
		sprintName := ""
		if task.Sprint != nil {
			sprintName = task.Sprint.Name
		}
		report.CompletedTasks = append(report.CompletedTasks, dto.ReportCompletedTask{
			ID:          task.ID,
			Title:       task.Title,
			Points:      task.Points,
			CompletedAt: *task.CompletedAt,
			Sprint:      sprintName,
			TaskLink:    task.TaskLink,
		})
		report.Summary.CompletedPoints += task.Points
	}
	report.Summary.CompletedTasks = len(completed)

	active, err := s.sprintRepo.GetActive(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if active != nil {
		for _, task := range active.Tasks {
			report.SprintProgress.TotalTasks++
			report.SprintProgress.TotalPoints += task.Points
			if task.Completed {
				report.SprintProgress.CompletedTasks++
				report.SprintProgress.CompletedPoints += task.Points
				continue
			}
			report.PendingTasks = append(report.PendingTasks, dto.ReportPendingTask{
				ID:       task.ID,
				Title:    task.Title,
				Points:   task.Points,
				Priority: task.Priority,
				Sprint:   active.Name,
				TaskLink: task.TaskLink,
			})
			report.Summary.PendingTasks++
			report.Summary.PendingPoints += task.Points
		}
		if report.SprintProgress.TotalTasks > 0 {
			report.SprintProgress.CompletionRate = float64(report.SprintProgress.CompletedTasks) /
				float64(report.SprintProgress.TotalTasks) * 100
		}
	}

	return report, nil
}

// ====== Notes ======

func (s *TaskServiceImpl) CreateNote(ctx context.Context, taskID, userID uuid.UUID, req *dto.CreateNoteRequest) (*models.TaskNote, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID, userID); err != nil {
		return nil, services.ErrTaskNotFound
	}

	now := time.Now()
	note := &models.TaskNote{
		ID:        uuid.New(),
		Content:   req.Content,
		TaskID:    taskID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.ErrorContext(ctx, "Failed to create note", "task_id", taskID, "error", err)
		return nil, err
	}

	return note, nil
}

func (s *TaskServiceImpl) GetNotes(ctx context.Context, taskID, userID uuid.UUID) ([]*models.TaskNote, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID, userID); err != nil {
		return nil, services.ErrTaskNotFound
	}
	return s.noteRepo.ListByTask(ctx, taskID)
}

func (s *TaskServiceImpl) UpdateNote(ctx context.Context, noteID, taskID, userID uuid.UUID, req *dto.UpdateNoteRequest) (*models.TaskNote, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID, userID); err != nil {
		return nil, services.ErrTaskNotFound
	}

	note, err := s.noteRepo.GetByID(ctx, noteID, taskID, userID)
	if err != nil {
		return nil, services.ErrNoteNotFound
	}

	note.Content = req.Content
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(ctx, note); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNoteNotFound
		}
		return nil, err
	}

	return note, nil
}

func (s *TaskServiceImpl) DeleteNote(ctx context.Context, noteID, taskID, userID uuid.UUID) error {
	if _, err := s.taskRepo.GetByID(ctx, taskID, userID); err != nil {
		return services.ErrTaskNotFound
	}

	if err := s.noteRepo.Delete(ctx, noteID, taskID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrNoteNotFound
		}
		return err
	}

	return nil
}

// ====== Time entries ======

func (s *TaskServiceImpl) CreateTimeEntry(ctx context.Context, taskID, userID uuid.UUID, req *dto.CreateTimeEntryRequest) (*models.TimeEntry, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID, userID); err != nil {
		return nil, services.ErrTaskNotFound
	}

	startTime, err := parseOptionalTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseOptionalTime(req.EndTime)
	if err != nil {
		return nil, err
	}

	entry := &models.TimeEntry{
		ID:        uuid.New(),
		Hours:     *req.Hours,
		StartTime: startTime,
		EndTime:   endTime,
		TaskID:    taskID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		logger.ErrorContext(ctx, "Failed to create time entry", "task_id", taskID, "error", err)
		return nil, err
	}

	if err := s.taskRepo.RecalcTimeSpent(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to recalculate time spent", "task_id", taskID, "error", err)
		return nil, err
	}

	return entry, nil
}

func (s *TaskServiceImpl) GetTimeEntries(ctx context.Context, taskID, userID uuid.UUID) ([]*models.TimeEntry, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID, userID); err != nil {
		return nil, services.ErrTaskNotFound
	}
	return s.entryRepo.ListByTask(ctx, taskID)
}

func (s *TaskServiceImpl) UpdateTimeEntry(ctx context.Context, entryID, taskID, userID uuid.UUID, req *dto.UpdateTimeEntryRequest) (*models.TimeEntry, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID, userID); err != nil {
		return nil, services.ErrTaskNotFound
	}

	entry, err := s.entryRepo.GetByID(ctx, entryID, taskID, userID)
	if err != nil {
		return nil, services.ErrTimeEntryNotFound
	}

	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Hours != nil {
		entry.Hours = *req.Hours
	}
	if req.StartTime != nil {
		startTime, err := parseOptionalTime(req.StartTime)
		if err != nil {
			return nil, err
		}
		entry.StartTime = startTime
	}
	if req.EndTime != nil {
		endTime, err := parseOptionalTime(req.EndTime)
		if err != nil {
			return nil, err
		}
		entry.EndTime = endTime
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTimeEntryNotFound
		}
		return nil, err
	}

	if err := s.taskRepo.RecalcTimeSpent(ctx, taskID); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *TaskServiceImpl) DeleteTimeEntry(ctx context.Context, entryID, taskID, userID uuid.UUID) error {
	if _, err := s.taskRepo.GetByID(ctx, taskID, userID); err != nil {
		return services.ErrTaskNotFound
	}

	if err := s.entryRepo.Delete(ctx, entryID, taskID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrTimeEntryNotFound
		}
		return err
	}

	return s.taskRepo.RecalcTimeSpent(ctx, taskID)
}

func parseOptionalTime(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, services.ErrInvalidDate
	}
	return &parsed, nil
}
