package dto

import (
	"time"

	"campushub_backend/internals/features/clubs/model"
)

type ClubRequest struct {
	ClubName          string `json:"club_name" validate:"required,min=3,max=120"`
	ClubDescription   string `json:"club_description" validate:"max=2000"`
	ClubCategory      string `json:"club_category" validate:"required,max=60"`
	ClubPresidentName string `json:"club_president_name" validate:"max=120"`
}

type ClubResponse struct {
	ClubID            string    `json:"club_id"`
	ClubName          string    `json:"club_name"`
	ClubDescription   string    `json:"club_description"`
	ClubCategory      string    `json:"club_category"`
	ClubPresidentName string    `json:"club_president_name"`
	ClubMemberCount   int64     `json:"club_member_count"`
	IsMember          bool      `json:"is_member"`
	CreatedAt         time.Time `json:"created_at"`
}

// ClubMemberResponse is a membership row joined with the user directory.
type ClubMemberResponse struct {
	UserID     string    `json:"user_id" gorm:"column:club_member_user_id"`
	UserName   string    `json:"user_name" gorm:"column:user_name"`
	Email      string    `json:"email" gorm:"column:email"`
	Department *string   `json:"department,omitempty" gorm:"column:department"`
	JoinedAt   time.Time `json:"joined_at" gorm:"column:club_member_joined_at"`
}

func (r *ClubRequest) ToModel() *model.ClubModel {
	return &model.ClubModel{
		ClubName:          r.ClubName,
		ClubDescription:   r.ClubDescription,
		ClubCategory:      r.ClubCategory,
		ClubPresidentName: r.ClubPresidentName,
	}
}

func ToClubResponse(m *model.ClubModel, memberCount int64, isMember bool) ClubResponse {
	return ClubResponse{
		ClubID:            m.ClubID.String(),
		ClubName:          m.ClubName,
		ClubDescription:   m.ClubDescription,
		ClubCategory:      m.ClubCategory,
		ClubPresidentName: m.ClubPresidentName,
		ClubMemberCount:   memberCount,
		IsMember:          isMember,
		CreatedAt:         m.CreatedAt,
	}
}
