package analytics

import (
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func day(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newProject(start, end, budget string) *model.Project {
	return &model.Project{
		ID:        uuid.New(),
		Code:      "PRJ-TEST",
		Name:      "Test project",
		StartDate: day(start),
		EndDate:   day(end),
		Budget:    money(budget),
		Status:    model.ProjectActive,
	}
}

func doneTask(completed string) model.Task {
	return model.Task{ID: uuid.New(), Status: model.TaskDone, CompletedAt: dayPtr(completed)}
}

func openTask(due string) model.Task {
	t := model.Task{ID: uuid.New(), Status: model.TaskTodo}
	if due != "" {
		t.DueDate = dayPtr(due)
	}
	return t
}
