package usecases

import (
	"time"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/user"
)

type ProjectDTO struct {
	ID          uint      `json:"id"`
	CompanyID   uint      `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	PriorityID  uint      `json:"priority_id"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID(),
		CompanyID:   p.CompanyID(),
		Name:        p.Name(),
		Description: p.Description(),
		StartDate:   p.StartDate(),
		EndDate:     p.EndDate(),
		PriorityID:  p.PriorityID(),
		Archived:    p.Archived(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toProjectDTOs(projects []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		dtos = append(dtos, toProjectDTO(p))
	}
	return dtos
}

type MemberDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func toMemberDTO(u *user.User) MemberDTO {
	return MemberDTO{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
	}
}

func toMemberDTOs(users []*user.User) []MemberDTO {
	dtos := make([]MemberDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toMemberDTO(u))
	}
	return dtos
}
