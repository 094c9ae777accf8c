package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/lostfound/model"
)

type LostItemRequest struct {
	LostItemTitle       string  `json:"lost_item_title" validate:"required,min=3,max=150"`
	LostItemDescription string  `json:"lost_item_description" validate:"max=2000"`
	LostItemCategory    string  `json:"lost_item_category" validate:"required,max=60"`
	LostItemLocation    string  `json:"lost_item_location" validate:"max=150"`
	LostItemStatus      string  `json:"lost_item_status" validate:"omitempty,oneof=lost found"`
	LostItemContactInfo string  `json:"lost_item_contact_info" validate:"max=150"`
	LostItemImage       *string `json:"lost_item_image"`
}

type LostItemResponse struct {
	LostItemID          string    `json:"lost_item_id"`
	LostItemTitle       string    `json:"lost_item_title"`
	LostItemDescription string    `json:"lost_item_description"`
	LostItemCategory    string    `json:"lost_item_category"`
	LostItemLocation    string    `json:"lost_item_location"`
	LostItemStatus      string    `json:"lost_item_status"`
	LostItemContactInfo string    `json:"lost_item_contact_info"`
	LostItemImageURL    *string   `json:"lost_item_image_url,omitempty"`
	LostItemThumbURL    *string   `json:"lost_item_thumb_url,omitempty"`
	LostItemPosterID    string    `json:"lost_item_poster_id"`
	LostItemPosterName  string    `json:"lost_item_poster_name"`
	CreatedAt           time.Time `json:"created_at"`
}

func (r *LostItemRequest) ToModel(posterID uuid.UUID, posterName string) *model.LostItemModel {
	status := r.LostItemStatus
	if status == "" {
		status = model.LostItemStatusLost
	}
	return &model.LostItemModel{
		LostItemTitle:        r.LostItemTitle,
		LostItemDescription:  r.LostItemDescription,
		LostItemCategory:     r.LostItemCategory,
		LostItemLocation:     r.LostItemLocation,
		LostItemStatus:       status,
		LostItemContactInfo:  r.LostItemContactInfo,
		LostItemImageDataURL: r.LostItemImage,
		LostItemPosterID:     posterID,
		LostItemPosterName:   posterName,
	}
}

func ToLostItemResponse(m *model.LostItemModel) LostItemResponse {
	return LostItemResponse{
		LostItemID:          m.LostItemID.String(),
		LostItemTitle:       m.LostItemTitle,
		LostItemDescription: m.LostItemDescription,
		LostItemCategory:    m.LostItemCategory,
		LostItemLocation:    m.LostItemLocation,
		LostItemStatus:      m.LostItemStatus,
		LostItemContactInfo: m.LostItemContactInfo,
		LostItemImageURL:    m.LostItemImageDataURL,
		LostItemThumbURL:    m.LostItemThumbURL,
		LostItemPosterID:    m.LostItemPosterID.String(),
		LostItemPosterName:  m.LostItemPosterName,
		CreatedAt:           m.CreatedAt,
	}
}

func ToLostItemResponseList(items []model.LostItemModel) []LostItemResponse {
	out := make([]LostItemResponse, 0, len(items))
	for i := range items {
		out = append(out, ToLostItemResponse(&items[i]))
	}
	return out
}
