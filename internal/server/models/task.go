package models

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskBlocked    TaskStatus = "blocked"
)

func ParseTaskStatus(s string) (TaskStatus, error) {
	switch st := TaskStatus(s); st {
	case TaskPending, TaskInProgress, TaskCompleted, TaskBlocked:
		return st, nil
	case "":
		return TaskPending, nil
	default:
		return "", fmt.Errorf("unknown task status %q", s)
	}
}

// Task is a delegated piece of work, optionally tied to a client/contract.
type Task struct {
	ID          string
	Title       string
	Description *string
	Status      TaskStatus
	AssignedTo  *string
	CreatedBy   string
	ClientID    *string
	ContractID  *string
	Deadline    *time.Time
}
