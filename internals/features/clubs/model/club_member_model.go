package model

import (
	"time"

	"github.com/google/uuid"
)

// ClubMemberModel is the membership join table. The composite key makes
// repeated joins a natural no-op.
type ClubMemberModel struct {
	ClubMemberClubID   uuid.UUID `gorm:"column:club_member_club_id;type:uuid;primaryKey" json:"club_member_club_id"`
	ClubMemberUserID   uuid.UUID `gorm:"column:club_member_user_id;type:uuid;primaryKey" json:"club_member_user_id"`
	ClubMemberJoinedAt time.Time `gorm:"column:club_member_joined_at;autoCreateTime" json:"club_member_joined_at"`
}

func (ClubMemberModel) TableName() string {
	return "club_members"
}
