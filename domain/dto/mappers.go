package dto

import (
	"sprintdeck/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func SprintToSummary(sprint *models.Sprint) *SprintSummary {
	if sprint == nil {
		return nil
	}
	return &SprintSummary{
		ID:        sprint.ID,
		Name:      sprint.Name,
		Status:    sprint.Status,
		StartDate: sprint.StartDate,
		EndDate:   sprint.EndDate,
	}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Completed:      task.Completed,
		CompletedAt:    task.CompletedAt,
		Points:         task.Points,
		TaskLink:       task.TaskLink,
		Priority:       task.Priority,
		EstimatedHours: task.EstimatedHours,
		TimeSpent:      task.TimeSpent,
		UserID:         task.UserID,
		SprintID:       task.SprintID,
		Sprint:         SprintToSummary(task.Sprint),
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
	for i := range task.Notes {
		resp.Notes = append(resp.Notes, *NoteToNoteResponse(&task.Notes[i]))
	}
	for i := range task.TimeEntries {
		resp.TimeEntries = append(resp.TimeEntries, *TimeEntryToResponse(&task.TimeEntries[i]))
	}
	return resp
}

func NoteToNoteResponse(note *models.TaskNote) *TaskNoteResponse {
	return &TaskNoteResponse{
		ID:        note.ID,
		Content:   note.Content,
		TaskID:    note.TaskID,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func TimeEntryToResponse(entry *models.TimeEntry) *TimeEntryResponse {
	return &TimeEntryResponse{
		ID:          entry.ID,
		Description: entry.Description,
		Hours:       entry.Hours,
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
		TaskID:      entry.TaskID,
		UserID:      entry.UserID,
		CreatedAt:   entry.CreatedAt,
	}
}

func SprintToSprintResponse(sprint *models.Sprint) *SprintResponse {
	resp := &SprintResponse{
		ID:          sprint.ID,
		Name:        sprint.Name,
		Description: sprint.Description,
		StartDate:   sprint.StartDate,
		EndDate:     sprint.EndDate,
		Status:      sprint.Status,
		UserID:      sprint.UserID,
		Tasks:       make([]TaskResponse, 0, len(sprint.Tasks)),
		CreatedAt:   sprint.CreatedAt,
		UpdatedAt:   sprint.UpdatedAt,
	}
	for i := range sprint.Tasks {
		resp.Tasks = append(resp.Tasks, *TaskToTaskResponse(&sprint.Tasks[i]))
	}
	return resp
}

func SprintToListItem(sprint *models.Sprint) *SprintListItem {
	item := &SprintListItem{
		ID:          sprint.ID,
		Name:        sprint.Name,
		Description: sprint.Description,
		StartDate:   sprint.StartDate,
		EndDate:     sprint.EndDate,
		Status:      sprint.Status,
		UserID:      sprint.UserID,
		Tasks:       make([]SprintTaskItem, 0, len(sprint.Tasks)),
		Count:       SprintTaskCount{Tasks: len(sprint.Tasks)},
		CreatedAt:   sprint.CreatedAt,
		UpdatedAt:   sprint.UpdatedAt,
	}
	for _, task := range sprint.Tasks {
		item.Tasks = append(item.Tasks, SprintTaskItem{
			ID:        task.ID,
			Title:     task.Title,
			Completed: task.Completed,
			Points:    task.Points,
			Priority:  task.Priority,
		})
	}
	return item
}
