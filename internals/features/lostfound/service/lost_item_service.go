package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/lostfound/model"
)

type LostItemService struct {
	DB *gorm.DB
}

func NewLostItemService(db *gorm.DB) *LostItemService {
	return &LostItemService{DB: db}
}

type LostItemFilter struct {
	Status   string
	Category string
	Search   string
}

// List returns items newest first with optional filters, paginated.
func (s *LostItemService) List(f LostItemFilter, offset, limit int) ([]model.LostItemModel, int64, error) {
	q := s.DB.Model(&model.LostItemModel{})
	if f.Status != "" {
		q = q.Where("lost_item_status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("lost_item_category = ?", f.Category)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(lost_item_title || ' ' || lost_item_description) LIKE ?", like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.LostItemModel
	err := q.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&items).Error
	return items, total, err
}

func (s *LostItemService) GetByID(id uuid.UUID) (*model.LostItemModel, error) {
	var item model.LostItemModel
	if err := s.DB.First(&item, "lost_item_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *LostItemService) Create(item *model.LostItemModel) error {
	return s.DB.Create(item).Error
}

// MarkClaimed resolves an item. Returns rows affected so the caller can 404.
func (s *LostItemService) MarkClaimed(id uuid.UUID) (int64, error) {
	res := s.DB.Model(&model.LostItemModel{}).
		Where("lost_item_id = ?", id).
		Update("lost_item_status", model.LostItemStatusClaimed)
	return res.RowsAffected, res.Error
}

// Remove is a hard delete. Idempotent.
func (s *LostItemService) Remove(id uuid.UUID) error {
	return s.DB.Where("lost_item_id = ?", id).Delete(&model.LostItemModel{}).Error
}
