package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"wada-stylist/internal/domain/entities"
)

const (
	AnalyticsQueue = "analytics"

	TaskVisit       = "analytics:visit"
	TaskColor       = "analytics:color"
	TaskCombination = "analytics:combination"
	TaskGender      = "analytics:gender"
)

type GenderPayload struct {
	Gender string `json:"gender"`
}

func NewVisitTask(visit entities.Visit) (*asynq.Task, error) {
	return newTask(TaskVisit, visit)
}

func NewColorTask(color entities.ColorSelection) (*asynq.Task, error) {
	return newTask(TaskColor, color)
}

func NewCombinationTask(selection entities.CombinationSelection) (*asynq.Task, error) {
	return newTask(TaskCombination, selection)
}

func NewGenderTask(gender string) (*asynq.Task, error) {
	return newTask(TaskGender, GenderPayload{Gender: gender})
}

func newTask(typename string, payload any) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", typename, err)
	}
	return asynq.NewTask(typename, data), nil
}
