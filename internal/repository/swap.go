package repository

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SwapRepository defines persistence operations for swap requests.
type SwapRepository interface {
	Create(ctx context.Context, swap *models.SwapRequest) error
	GetByID(ctx context.Context, id uint) (*models.SwapRequest, error)
	GetView(ctx context.Context, id uint) (*models.SwapRequestView, error)
	ListForUser(ctx context.Context, userID uint) ([]models.SwapRequestView, error)
	ListAll(ctx context.Context) ([]models.SwapRequestView, error)
	CompareAndSetStatus(ctx context.Context, id uint, from, to models.SwapStatus, updatedAt time.Time) (bool, error)
	DeletePending(ctx context.Context, id, requesterID uint) (bool, error)
}

type swapRepository struct {
	db *gorm.DB
}

// NewSwapRepository returns a new SwapRepository implementation.
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

// swapRow is a swap request joined with both parties' display names.
type swapRow struct {
	ID                uint
	RequesterID       uint
	RequestedID       uint
	OfferedSkill      string
	WantedSkill       string
	Message           string
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	RequesterName     string
	RequesterUsername string
	RequestedName     string
	RequestedUsername string
}

func (row swapRow) view() models.SwapRequestView {
	return models.SwapRequestView{
		SwapRequest: models.SwapRequest{
			ID:           row.ID,
			RequesterID:  row.RequesterID,
			RequestedID:  row.RequestedID,
			OfferedSkill: row.OfferedSkill,
			WantedSkill:  row.WantedSkill,
			Message:      row.Message,
			Status:       models.SwapStatus(row.Status),
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		},
		RequesterName:     row.RequesterName,
		RequesterUsername: row.RequesterUsername,
		RequestedName:     row.RequestedName,
		RequestedUsername: row.RequestedUsername,
		Ratings:           []models.Rating{},
	}
}

func (r *swapRepository) enriched(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("swap_requests").
		Select(`swap_requests.id, swap_requests.requester_id, swap_requests.requested_id,
			swap_requests.offered_skill, swap_requests.wanted_skill, swap_requests.message,
			swap_requests.status, swap_requests.created_at, swap_requests.updated_at,
			u1.name AS requester_name, u1.username AS requester_username,
			u2.name AS requested_name, u2.username AS requested_username`).
		Joins("JOIN users u1 ON swap_requests.requester_id = u1.id").
		Joins("JOIN users u2 ON swap_requests.requested_id = u2.id")
}

func (r *swapRepository) scanViews(q *gorm.DB) ([]models.SwapRequestView, error) {
	var rows []swapRow
	if err := q.Order("swap_requests.created_at DESC, swap_requests.id DESC").Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	views := make([]models.SwapRequestView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.view())
	}
	return views, nil
}

func (r *swapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	if err := r.db.WithContext(ctx).Omit("Requester", "Requested").Create(swap).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *swapRepository) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.WithContext(ctx).First(&swap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Swap request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &swap, nil
}

func (r *swapRepository) GetView(ctx context.Context, id uint) (*models.SwapRequestView, error) {
	views, err := r.scanViews(r.enriched(ctx).Where("swap_requests.id = ?", id))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, models.NewNotFoundError("Swap request", id)
	}
	return &views[0], nil
}

// ListForUser returns every request userID takes part in, newest first.
func (r *swapRepository) ListForUser(ctx context.Context, userID uint) ([]models.SwapRequestView, error) {
	return r.scanViews(r.enriched(ctx).
		Where("swap_requests.requester_id = ? OR swap_requests.requested_id = ?", userID, userID))
}

func (r *swapRepository) ListAll(ctx context.Context) ([]models.SwapRequestView, error) {
	return r.scanViews(r.enriched(ctx))
}

// CompareAndSetStatus moves the request from `from` to `to` only if its status
// is still `from`. It reports false when another writer got there first.
func (r *swapRepository) CompareAndSetStatus(ctx context.Context, id uint, from, to models.SwapStatus, updatedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// DeletePending removes the request only while it is pending and owned by requesterID.
func (r *swapRepository) DeletePending(ctx context.Context, id, requesterID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND requester_id = ? AND status = ?", id, requesterID, models.SwapStatusPending).
		Delete(&models.SwapRequest{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected == 1, nil
}
