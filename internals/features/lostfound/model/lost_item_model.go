package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LostItemStatusLost    = "lost"
	LostItemStatusFound   = "found"
	LostItemStatusClaimed = "claimed"
)

type LostItemModel struct {
	LostItemID          uuid.UUID `gorm:"column:lost_item_id;type:uuid;primaryKey" json:"lost_item_id"`
	LostItemTitle       string    `gorm:"column:lost_item_title;size:150;not null" json:"lost_item_title"`
	LostItemDescription string    `gorm:"column:lost_item_description;type:text" json:"lost_item_description"`
	LostItemCategory    string    `gorm:"column:lost_item_category;size:60;not null" json:"lost_item_category"`
	LostItemLocation    string    `gorm:"column:lost_item_location;size:150" json:"lost_item_location"`
	LostItemStatus      string    `gorm:"column:lost_item_status;type:varchar(10);not null;default:'lost'" json:"lost_item_status"`
	LostItemContactInfo string    `gorm:"column:lost_item_contact_info;size:150" json:"lost_item_contact_info"`

	LostItemImageDataURL *string `gorm:"column:lost_item_image_data_url;type:text" json:"lost_item_image_data_url,omitempty"`
	LostItemThumbURL     *string `gorm:"column:lost_item_thumb_url;type:text" json:"lost_item_thumb_url,omitempty"`

	LostItemPosterID   uuid.UUID `gorm:"column:lost_item_poster_id;type:uuid;not null;index" json:"lost_item_poster_id"`
	LostItemPosterName string    `gorm:"column:lost_item_poster_name;size:120" json:"lost_item_poster_name"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LostItemModel) TableName() string {
	return "lost_items"
}

func (m *LostItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.LostItemID == uuid.Nil {
		m.LostItemID = uuid.New()
	}
	return nil
}
