package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/clubs/dto"
	"campushub_backend/internals/features/clubs/model"
)

type ClubService struct {
	DB *gorm.DB
}

func NewClubService(db *gorm.DB) *ClubService {
	return &ClubService{DB: db}
}

// ==========================
// CLUBS
// ==========================

// GetAll returns every club ordered by name.
func (s *ClubService) GetAll() ([]model.ClubModel, error) {
	var clubs []model.ClubModel
	err := s.DB.Order("club_name ASC").Find(&clubs).Error
	return clubs, err
}

func (s *ClubService) GetByID(id uuid.UUID) (*model.ClubModel, error) {
	var club model.ClubModel
	if err := s.DB.First(&club, "club_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

func (s *ClubService) Create(club *model.ClubModel) error {
	return s.DB.Create(club).Error
}

func (s *ClubService) Update(id uuid.UUID, updates map[string]interface{}) (*model.ClubModel, error) {
	res := s.DB.Model(&model.ClubModel{}).
		Where("club_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetByID(id)
}

// Remove deletes a club and its memberships. Idempotent.
func (s *ClubService) Remove(id uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_member_club_id = ?", id).
			Delete(&model.ClubMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Where("club_id = ?", id).Delete(&model.ClubModel{}).Error
	})
}

// ==========================
// MEMBERSHIP
// ==========================

// Join adds the user to a club. Joining twice is a no-op that still succeeds.
func (s *ClubService) Join(clubID, userID uuid.UUID) (*model.ClubMemberModel, error) {
	var member model.ClubMemberModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var club model.ClubModel
		if err := tx.First(&club, "club_id = ?", clubID).Error; err != nil {
			return err
		}

		err := tx.Where("club_member_club_id = ? AND club_member_user_id = ?", clubID, userID).
			First(&member).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		member = model.ClubMemberModel{
			ClubMemberClubID: clubID,
			ClubMemberUserID: userID,
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Leave removes the membership. Leaving a club the user never joined is a no-op.
func (s *ClubService) Leave(clubID, userID uuid.UUID) error {
	return s.DB.Where("club_member_club_id = ? AND club_member_user_id = ?", clubID, userID).
		Delete(&model.ClubMemberModel{}).Error
}

func (s *ClubService) IsMember(clubID, userID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.Model(&model.ClubMemberModel{}).
		Where("club_member_club_id = ? AND club_member_user_id = ?", clubID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *ClubService) MemberCount(clubID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.Model(&model.ClubMemberModel{}).
		Where("club_member_club_id = ?", clubID).
		Count(&count).Error
	return count, err
}

// MemberCounts returns clubID -> member count in one query.
func (s *ClubService) MemberCounts() (map[uuid.UUID]int64, error) {
	type row struct {
		ClubID uuid.UUID `gorm:"column:club_member_club_id"`
		Total  int64     `gorm:"column:total"`
	}
	var rows []row
	err := s.DB.Model(&model.ClubMemberModel{}).
		Select("club_member_club_id, COUNT(*) AS total").
		Group("club_member_club_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		out[r.ClubID] = r.Total
	}
	return out, nil
}

// MembershipSet returns the club IDs the user belongs to.
func (s *ClubService) MembershipSet(userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	err := s.DB.Model(&model.ClubMemberModel{}).
		Where("club_member_user_id = ?", userID).
		Pluck("club_member_club_id", &ids).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// Members lists a club's roster joined with the user directory, oldest
// membership first. ErrRecordNotFound when the club does not exist.
func (s *ClubService) Members(clubID uuid.UUID) ([]dto.ClubMemberResponse, error) {
	var club model.ClubModel
	if err := s.DB.First(&club, "club_id = ?", clubID).Error; err != nil {
		return nil, err
	}
	var members []dto.ClubMemberResponse
	err := s.DB.Model(&model.ClubMemberModel{}).
		Select("club_members.club_member_user_id, users.user_name, users.email, users.department, club_members.club_member_joined_at").
		Joins("JOIN users ON users.id = club_members.club_member_user_id").
		Where("club_members.club_member_club_id = ?", clubID).
		Order("club_members.club_member_joined_at ASC").
		Scan(&members).Error
	return members, err
}

// MyClubs lists the clubs a user has joined, ordered by name.
func (s *ClubService) MyClubs(userID uuid.UUID) ([]model.ClubModel, error) {
	var clubs []model.ClubModel
	err := s.DB.
		Joins("JOIN club_members ON club_members.club_member_club_id = clubs.club_id").
		Where("club_members.club_member_user_id = ?", userID).
		Order("clubs.club_name ASC").
		Find(&clubs).Error
	return clubs, err
}
