package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sprintdeck/domain/dto"
	"sprintdeck/domain/models"
	"sprintdeck/domain/services"
	"sprintdeck/infrastructure/postgres"
)

func newTaskServiceForTest(t *testing.T) (services.TaskService, services.SprintService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	taskSvc := NewTaskService(
		postgres.NewTaskRepository(db),
		postgres.NewNoteRepository(db),
		postgres.NewTimeEntryRepository(db),
		postgres.NewSprintRepository(db),
	)
	sprintSvc := NewSprintService(postgres.NewSprintRepository(db))
	return taskSvc, sprintSvc, db
}

func createTestTask(t *testing.T, svc services.TaskService, userID uuid.UUID, title string) *models.Task {
	t.Helper()

	task, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{
		Title:       title,
		Description: "a task",
	})
	require.NoError(t, err)
	return task
}

func TestApplyTaskPatchDerivesCompletedAt(t *testing.T) {
	now := time.Now()
	task := &models.Task{Title: "t"}

	// false -> true sets the timestamp
	applyTaskPatch(task, &dto.UpdateTaskRequest{Completed: boolPtr(true)}, now)
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.Equal(now))

	// no completed field leaves it untouched
	later := now.Add(time.Hour)
	applyTaskPatch(task, &dto.UpdateTaskRequest{Title: strPtr("renamed")}, later)
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.Equal(now), "timestamp must survive unrelated updates")

	// true -> true is not a transition
	applyTaskPatch(task, &dto.UpdateTaskRequest{Completed: boolPtr(true)}, later)
	assert.True(t, task.CompletedAt.Equal(now))

	// true -> false clears it
	applyTaskPatch(task, &dto.UpdateTaskRequest{Completed: boolPtr(false)}, later)
	assert.Nil(t, task.CompletedAt)
	assert.False(t, task.Completed)
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, _, db := newTaskServiceForTest(t)
	user := seedUser(t, db, "alice@example.com")

	task := createTestTask(t, svc, user.ID, "defaults")
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, 0, task.Points)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
	assert.Zero(t, task.TimeSpent)
}

func TestToggleTaskLifecycle(t *testing.T) {
	svc, _, db := newTaskServiceForTest(t)
	user := seedUser(t, db, "alice@example.com")
	task := createTestTask(t, svc, user.ID, "toggle me")

	toggled, err := svc.ToggleTask(context.Background(), task.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	require.NotNil(t, toggled.CompletedAt)

	// second toggle reopens the task and clears the timestamp in storage
	reopened, err := svc.ToggleTask(context.Background(), task.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedAt)
}

func TestUpdateTaskOwnershipIsolation(t *testing.T) {
	svc, _, db := newTaskServiceForTest(t)
	alice := seedUser(t, db, "alice@example.com")
	mallory := seedUser(t, db, "mallory@example.com")
	task := createTestTask(t, svc, alice.ID, "private")

	_, err := svc.UpdateTask(context.Background(), task.ID, mallory.ID, &dto.UpdateTaskRequest{
		Title: strPtr("stolen"),
	})
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	err = svc.DeleteTask(context.Background(), task.ID, mallory.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	// the task is untouched
	kept, err := svc.GetTaskWithDetails(context.Background(), task.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", kept.Title)
}

func TestGetTasksPagination(t *testing.T) {
	svc, _, db := newTaskServiceForTest(t)
	user := seedUser(t, db, "alice@example.com")

	for i := 0; i < 5; i++ {
		createTestTask(t, svc, user.ID, "task")
	}

	tasks, total, err := svc.GetTasks(context.Background(), user.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, int64(5), total)

	tasks, total, err = svc.GetTasks(context.Background(), user.ID, 3, 2)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, int64(5), total)

	// a page past the end is empty, not an error
	tasks, _, err = svc.GetTasks(context.Background(), user.ID, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTimeSpentFollowsEntries(t *testing.T) {
	svc, _, db := newTaskServiceForTest(t)
	user := seedUser(t, db, "alice@example.com")
	task := createTestTask(t, svc, user.ID, "timed")
	ctx := context.Background()

	first, err := svc.CreateTimeEntry(ctx, task.ID, user.ID, &dto.CreateTimeEntryRequest{
		Hours: floatPtr(2),
	})
	require.NoError(t, err)

	_, err = svc.CreateTimeEntry(ctx, task.ID, user.ID, &dto.CreateTimeEntryRequest{
		Hours:       floatPtr(1.5),
		Description: strPtr("code review"),
	})
	require.NoError(t, err)

	reloaded, err := svc.GetTaskWithDetails(ctx, task.ID, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, reloaded.TimeSpent, 1e-9)
	assert.Len(t, reloaded.TimeEntries, 2)

	_, err = svc.UpdateTimeEntry(ctx, first.ID, task.ID, user.ID, &dto.UpdateTimeEntryRequest{
		Hours: floatPtr(4),
	})
	require.NoError(t, err)

	reloaded, err = svc.GetTaskWithDetails(ctx, task.ID, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, reloaded.TimeSpent, 1e-9)

	require.NoError(t, svc.DeleteTimeEntry(ctx, first.ID, task.ID, user.ID))

	reloaded, err = svc.GetTaskWithDetails(ctx, task.ID, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, reloaded.TimeSpent, 1e-9)
}

func TestTimeEntryRejectsBadTimestamp(t *testing.T) {
	svc, _, db := newTaskServiceForTest(t)
	user := seedUser(t, db, "alice@example.com")
	task := createTestTask(t, svc, user.ID, "timed")

	_, err := svc.CreateTimeEntry(context.Background(), task.ID, user.ID, &dto.CreateTimeEntryRequest{
		Hours:     floatPtr(1),
		StartTime: strPtr("yesterday at noon"),
	})
	assert.ErrorIs(t, err, services.ErrInvalidDate)
}

func TestNotesLifecycle(t *testing.T) {
	svc, _, db := newTaskServiceForTest(t)
	alice := seedUser(t, db, "alice@example.com")
	mallory := seedUser(t, db, "mallory@example.com")
	task := createTestTask(t, svc, alice.ID, "noted")
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, task.ID, alice.ID, &dto.CreateNoteRequest{Content: "first"})
	require.NoError(t, err)

	// notes hang off the task, so a foreign task id is a 404 up front
	_, err = svc.CreateNote(ctx, task.ID, mallory.ID, &dto.CreateNoteRequest{Content: "intruder"})
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	updated, err := svc.UpdateNote(ctx, note.ID, task.ID, alice.ID, &dto.UpdateNoteRequest{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	// a note id under the wrong task resolves to the child sentinel
	otherTask := createTestTask(t, svc, alice.ID, "other")
	_, err = svc.UpdateNote(ctx, note.ID, otherTask.ID, alice.ID, &dto.UpdateNoteRequest{Content: "x"})
	assert.ErrorIs(t, err, services.ErrNoteNotFound)

	require.NoError(t, svc.DeleteNote(ctx, note.ID, task.ID, alice.ID))

	notes, err := svc.GetNotes(ctx, task.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestDeleteTaskRemovesChildren(t *testing.T) {
	svc, _, db := newTaskServiceForTest(t)
	user := seedUser(t, db, "alice@example.com")
	task := createTestTask(t, svc, user.ID, "doomed")
	ctx := context.Background()

	_, err := svc.CreateNote(ctx, task.ID, user.ID, &dto.CreateNoteRequest{Content: "n"})
	require.NoError(t, err)
	_, err = svc.CreateTimeEntry(ctx, task.ID, user.ID, &dto.CreateTimeEntryRequest{Hours: floatPtr(1)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, task.ID, user.ID))

	var noteCount, entryCount int64
	require.NoError(t, db.Model(&models.TaskNote{}).Where("task_id = ?", task.ID).Count(&noteCount).Error)
	require.NoError(t, db.Model(&models.TimeEntry{}).Where("task_id = ?", task.ID).Count(&entryCount).Error)
	assert.Zero(t, noteCount)
	assert.Zero(t, entryCount)
}

func TestDailyReport(t *testing.T) {
	taskSvc, sprintSvc, db := newTaskServiceForTest(t)
	user := seedUser(t, db, "alice@example.com")
	ctx := context.Background()

	sprint, err := sprintSvc.Create(ctx, user.ID, &dto.CreateSprintRequest{
		Name:      "Week 36",
		StartDate: "2026-08-31",
		EndDate:   "2026-09-06",
	})
	require.NoError(t, err)
	_, err = sprintSvc.Activate(ctx, sprint.ID, user.ID)
	require.NoError(t, err)

	done, err := taskSvc.CreateTask(ctx, user.ID, &dto.CreateTaskRequest{
		Title:       "ship it",
		Description: "d",
		Points:      intPtr(5),
		SprintID:    uuidPtr(sprint.ID),
	})
	require.NoError(t, err)
	_, err = taskSvc.ToggleTask(ctx, done.ID, user.ID)
	require.NoError(t, err)

	_, err = taskSvc.CreateTask(ctx, user.ID, &dto.CreateTaskRequest{
		Title:       "still open",
		Description: "d",
		Points:      intPtr(3),
		SprintID:    uuidPtr(sprint.ID),
	})
	require.NoError(t, err)

	report, err := taskSvc.GetDailyReport(ctx, user.ID, "")
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), report.Date)
	assert.Equal(t, 1, report.Summary.CompletedTasks)
	assert.Equal(t, 5, report.Summary.CompletedPoints)
	assert.Equal(t, 1, report.Summary.PendingTasks)
	assert.Equal(t, 3, report.Summary.PendingPoints)

	require.Len(t, report.CompletedTasks, 1)
	assert.Equal(t, "ship it", report.CompletedTasks[0].Title)
	assert.Equal(t, "Week 36", report.CompletedTasks[0].Sprint)

	require.Len(t, report.PendingTasks, 1)
	assert.Equal(t, "still open", report.PendingTasks[0].Title)

	assert.Equal(t, 2, report.SprintProgress.TotalTasks)
	assert.Equal(t, 1, report.SprintProgress.CompletedTasks)
	assert.Equal(t, 8, report.SprintProgress.TotalPoints)
	assert.InDelta(t, 50.0, report.SprintProgress.CompletionRate, 1e-9)
}

func TestDailyReportWithoutActiveSprint(t *testing.T) {
	svc, _, db := newTaskServiceForTest(t)
	user := seedUser(t, db, "alice@example.com")

	report, err := svc.GetDailyReport(context.Background(), user.ID, "")
	require.NoError(t, err)
	assert.Zero(t, report.Summary.CompletedTasks)
	assert.Empty(t, report.PendingTasks)
	assert.Zero(t, report.SprintProgress.TotalTasks)
	assert.Zero(t, report.SprintProgress.CompletionRate)
}

func TestDailyReportRejectsBadDate(t *testing.T) {
	svc, _, db := newTaskServiceForTest(t)
	user := seedUser(t, db, "alice@example.com")

	_, err := svc.GetDailyReport(context.Background(), user.ID, "09/01/2026")
	assert.ErrorIs(t, err, services.ErrInvalidDate)
}

func TestUpdateTaskDetachesSprint(t *testing.T) {
	taskSvc, sprintSvc, db := newTaskServiceForTest(t)
	user := seedUser(t, db, "alice@example.com")
	ctx := context.Background()

	sprint, err := sprintSvc.Create(ctx, user.ID, &dto.CreateSprintRequest{
		Name:      "s",
		StartDate: "2026-08-31",
		EndDate:   "2026-09-06",
	})
	require.NoError(t, err)

	task, err := taskSvc.CreateTask(ctx, user.ID, &dto.CreateTaskRequest{
		Title:       "assigned",
		Description: "d",
		SprintID:    uuidPtr(sprint.ID),
	})
	require.NoError(t, err)
	require.NotNil(t, task.SprintID)
	require.NotNil(t, task.Sprint)

	// deleting the sprint must leave the task behind, unassigned
	require.NoError(t, sprintSvc.Delete(ctx, sprint.ID, user.ID))

	orphan, err := taskSvc.GetTaskWithDetails(ctx, task.ID, user.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.SprintID)
}
