package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidWarrantyDuration = errors.New("warranty duration must be at least one month")
	ErrRepairItemWrongDevice   = errors.New("repair item belongs to another device")
)

// IssueWarrantyInput requests a coverage window for a device. When
// RepairItemID is set and Months is zero, the item's configured warranty
// duration is used.
type IssueWarrantyInput struct {
	RepairItemID string
	Months       int
}

// IWarrantyUseCase exposes warranty issuance and listing.

type IWarrantyUseCase interface {
	IssueWarranty(ctx context.Context, deviceID string, in IssueWarrantyInput) (entities.Warranty, error)
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.WarrantyView, error)
}

type WarrantyUseCase struct {
	repo       interfaces.IWarrantyRepository
	deviceRepo interfaces.IDeviceRepository
	itemRepo   interfaces.IRepairItemRepository
}

var _ IWarrantyUseCase = (*WarrantyUseCase)(nil)

func NewWarrantyUseCase(repo interfaces.IWarrantyRepository, deviceRepo interfaces.IDeviceRepository, itemRepo interfaces.IRepairItemRepository) *WarrantyUseCase {
	return &WarrantyUseCase{repo: repo, deviceRepo: deviceRepo, itemRepo: itemRepo}
}

func (u *WarrantyUseCase) IssueWarranty(ctx context.Context, deviceID string, in IssueWarrantyInput) (entities.Warranty, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return entities.Warranty{}, ErrInvalidDeviceID
	}

	device, err := u.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return entities.Warranty{}, err
	}
	if device.ID == "" {
		return entities.Warranty{}, ErrDeviceNotFound
	}

	months := in.Months
	itemID := strings.TrimSpace(in.RepairItemID)
	if itemID != "" {
		item, err := u.itemRepo.GetByID(ctx, itemID)
		if err != nil {
			return entities.Warranty{}, err
		}
		if item.ID == "" {
			return entities.Warranty{}, ErrRepairItemNotFound
		}
		if item.DeviceID != deviceID {
			return entities.Warranty{}, ErrRepairItemWrongDevice
		}
		if months == 0 {
			months = item.WarrantyMonths
		}
	}
	if months <= 0 {
		return entities.Warranty{}, ErrInvalidWarrantyDuration
	}

	now := time.Now().UTC()
	w := entities.Warranty{
		ID:           uuid.NewString(),
		DeviceID:     deviceID,
		RepairItemID: itemID,
		Code:         newWarrantyCode(),
		StartDate:    now,
		EndDate:      entities.WarrantyEndDate(now, months),
		CreatedAt:    now,
	}
	return u.repo.Create(ctx, w)
}

// ListByDeviceID returns the device's warranties with their live status and
// coverage kind computed at call time.
func (u *WarrantyUseCase) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.WarrantyView, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, ErrInvalidDeviceID
	}

	warranties, err := u.repo.ListByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	views := make([]entities.WarrantyView, 0, len(warranties))
	for _, w := range warranties {
		views = append(views, entities.WarrantyView{
			Warranty: w,
			Status:   w.StatusAt(now),
			Coverage: w.Coverage(),
		})
	}
	return views, nil
}

// newWarrantyCode derives the human-readable code staff print on receipts.
// Stable and unique once assigned.
func newWarrantyCode() string {
	return "BH-" + strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
}
