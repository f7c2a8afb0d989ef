package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateProfileFn func(context.Context, uint, repository.ProfileUpdate) error
	setBannedFn     func(context.Context, uint, bool) error
	setAdminFn      func(context.Context, uint, bool) error
	browseFn        func(context.Context, uint, string) ([]models.UserSummary, error)
	listNonAdminFn  func(context.Context) ([]models.AdminUserView, error)
	listAdminsFn    func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) UpdateProfile(ctx context.Context, id uint, update repository.ProfileUpdate) error {
	return s.updateProfileFn(ctx, id, update)
}
func (s *userRepoStub) SetBanned(ctx context.Context, id uint, banned bool) error {
	return s.setBannedFn(ctx, id, banned)
}
func (s *userRepoStub) SetAdmin(ctx context.Context, id uint, admin bool) error {
	return s.setAdminFn(ctx, id, admin)
}
func (s *userRepoStub) Browse(ctx context.Context, viewerID uint, search string) ([]models.UserSummary, error) {
	return s.browseFn(ctx, viewerID, search)
}
func (s *userRepoStub) ListNonAdmin(ctx context.Context) ([]models.AdminUserView, error) {
	return s.listNonAdminFn(ctx)
}
func (s *userRepoStub) ListAdmins(ctx context.Context) ([]models.User, error) {
	return s.listAdminsFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "user", IsPublic: true}, nil
		},
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateProfileFn: func(context.Context, uint, repository.ProfileUpdate) error { return nil },
		setBannedFn:     func(context.Context, uint, bool) error { return nil },
		setAdminFn:      func(context.Context, uint, bool) error { return nil },
		browseFn:        func(context.Context, uint, string) ([]models.UserSummary, error) { return nil, nil },
		listNonAdminFn:  func(context.Context) ([]models.AdminUserView, error) { return nil, nil },
		listAdminsFn:    func(context.Context) ([]models.User, error) { return nil, nil },
	}
}

type skillRepoStub struct {
	createFn      func(context.Context, *models.SkillEntry) error
	listByUserFn  func(context.Context, uint) ([]models.SkillEntry, error)
	deleteOwnedFn func(context.Context, uint, uint) (bool, error)
}

func (s *skillRepoStub) Create(ctx context.Context, skill *models.SkillEntry) error {
	return s.createFn(ctx, skill)
}
func (s *skillRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.SkillEntry, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *skillRepoStub) DeleteOwned(ctx context.Context, id, userID uint) (bool, error) {
	return s.deleteOwnedFn(ctx, id, userID)
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		createFn:      func(context.Context, *models.SkillEntry) error { return nil },
		listByUserFn:  func(context.Context, uint) ([]models.SkillEntry, error) { return []models.SkillEntry{}, nil },
		deleteOwnedFn: func(context.Context, uint, uint) (bool, error) { return true, nil },
	}
}

type swapRepoStub struct {
	createFn        func(context.Context, *models.SwapRequest) error
	getByIDFn       func(context.Context, uint) (*models.SwapRequest, error)
	getViewFn       func(context.Context, uint) (*models.SwapRequestView, error)
	listForUserFn   func(context.Context, uint) ([]models.SwapRequestView, error)
	listAllFn       func(context.Context) ([]models.SwapRequestView, error)
	compareAndSetFn func(context.Context, uint, models.SwapStatus, models.SwapStatus, time.Time) (bool, error)
	deletePendingFn func(context.Context, uint, uint) (bool, error)
}

func (s *swapRepoStub) Create(ctx context.Context, swap *models.SwapRequest) error {
	return s.createFn(ctx, swap)
}
func (s *swapRepoStub) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *swapRepoStub) GetView(ctx context.Context, id uint) (*models.SwapRequestView, error) {
	return s.getViewFn(ctx, id)
}
func (s *swapRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.SwapRequestView, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *swapRepoStub) ListAll(ctx context.Context) ([]models.SwapRequestView, error) {
	return s.listAllFn(ctx)
}
func (s *swapRepoStub) CompareAndSetStatus(ctx context.Context, id uint, from, to models.SwapStatus, updatedAt time.Time) (bool, error) {
	return s.compareAndSetFn(ctx, id, from, to, updatedAt)
}
func (s *swapRepoStub) DeletePending(ctx context.Context, id, requesterID uint) (bool, error) {
	return s.deletePendingFn(ctx, id, requesterID)
}

func noopSwapRepo() *swapRepoStub {
	return &swapRepoStub{
		createFn: func(_ context.Context, swap *models.SwapRequest) error {
			swap.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.SwapRequest, error) {
			return nil, models.NewNotFoundError("Swap request", id)
		},
		getViewFn: func(_ context.Context, id uint) (*models.SwapRequestView, error) {
			return nil, models.NewNotFoundError("Swap request", id)
		},
		listForUserFn:   func(context.Context, uint) ([]models.SwapRequestView, error) { return []models.SwapRequestView{}, nil },
		listAllFn:       func(context.Context) ([]models.SwapRequestView, error) { return []models.SwapRequestView{}, nil },
		compareAndSetFn: func(context.Context, uint, models.SwapStatus, models.SwapStatus, time.Time) (bool, error) { return true, nil },
		deletePendingFn: func(context.Context, uint, uint) (bool, error) { return true, nil },
	}
}

type ratingRepoStub struct {
	createFn        func(context.Context, *models.Rating) error
	listBySwapIDsFn func(context.Context, []uint) ([]models.Rating, error)
}

func (s *ratingRepoStub) Create(ctx context.Context, rating *models.Rating) error {
	return s.createFn(ctx, rating)
}
func (s *ratingRepoStub) ListBySwapIDs(ctx context.Context, swapIDs []uint) ([]models.Rating, error) {
	return s.listBySwapIDsFn(ctx, swapIDs)
}

func noopRatingRepo() *ratingRepoStub {
	return &ratingRepoStub{
		createFn:        func(context.Context, *models.Rating) error { return nil },
		listBySwapIDsFn: func(context.Context, []uint) ([]models.Rating, error) { return nil, nil },
	}
}

type adminRepoStub struct {
	createMessageFn func(context.Context, *models.AdminMessage) error
	countUsersFn    func(context.Context) (int64, error)
	countSwapsFn    func(context.Context) (int64, error)
	countSkillsFn   func(context.Context) (int64, error)
}

func (s *adminRepoStub) CreateMessage(ctx context.Context, msg *models.AdminMessage) error {
	return s.createMessageFn(ctx, msg)
}
func (s *adminRepoStub) CountNonAdminUsers(ctx context.Context) (int64, error) {
	return s.countUsersFn(ctx)
}
func (s *adminRepoStub) CountSwaps(ctx context.Context) (int64, error) {
	return s.countSwapsFn(ctx)
}
func (s *adminRepoStub) CountSkills(ctx context.Context) (int64, error) {
	return s.countSkillsFn(ctx)
}

func noopAdminRepo() *adminRepoStub {
	return &adminRepoStub{
		createMessageFn: func(_ context.Context, msg *models.AdminMessage) error {
			msg.ID = 1
			return nil
		},
		countUsersFn:  func(context.Context) (int64, error) { return 0, nil },
		countSwapsFn:  func(context.Context) (int64, error) { return 0, nil },
		countSkillsFn: func(context.Context) (int64, error) { return 0, nil },
	}
}

func requireAppError(t *testing.T, err error, code string) *models.AppError {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T (%v)", err, err)
	require.Equal(t, code, appErr.Code, appErr.Message)
	return appErr
}
