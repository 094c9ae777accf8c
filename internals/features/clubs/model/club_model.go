package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClubModel struct {
	ClubID            uuid.UUID `gorm:"column:club_id;type:uuid;primaryKey" json:"club_id"`
	ClubName          string    `gorm:"column:club_name;size:120;not null;unique" json:"club_name"`
	ClubDescription   string    `gorm:"column:club_description;type:text" json:"club_description"`
	ClubCategory      string    `gorm:"column:club_category;size:60;not null" json:"club_category"`
	ClubPresidentName string    `gorm:"column:club_president_name;size:120" json:"club_president_name"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Members []ClubMemberModel `gorm:"foreignKey:ClubMemberClubID;references:ClubID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

func (ClubModel) TableName() string {
	return "clubs"
}

func (m *ClubModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClubID == uuid.Nil {
		m.ClubID = uuid.New()
	}
	return nil
}
