package project

import (
	"time"

	"bugtrail/internal/application/project/usecases"
	"bugtrail/internal/shared/errors"
)

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	PriorityID  uint   `json:"priority_id" binding:"required"`
}

func (r *CreateProjectRequest) ToCommand(companyID uint) (usecases.CreateProjectCommand, error) {
	start, end, err := parseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return usecases.CreateProjectCommand{}, err
	}
	return usecases.CreateProjectCommand{
		ActorCompanyID: companyID,
		Name:           r.Name,
		Description:    r.Description,
		StartDate:      start,
		EndDate:        end,
		PriorityID:     r.PriorityID,
	}, nil
}

type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	PriorityID  uint   `json:"priority_id" binding:"required"`
}

func (r *UpdateProjectRequest) ToCommand(companyID, projectID uint) (usecases.UpdateProjectCommand, error) {
	start, end, err := parseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return usecases.UpdateProjectCommand{}, err
	}
	return usecases.UpdateProjectCommand{
		ActorCompanyID: companyID,
		ProjectID:      projectID,
		Name:           r.Name,
		Description:    r.Description,
		StartDate:      start,
		EndDate:        end,
		PriorityID:     r.PriorityID,
	}, nil
}

type MemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewValidationError("start_date must be YYYY-MM-DD")
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewValidationError("end_date must be YYYY-MM-DD")
	}
	return startDate, endDate, nil
}
