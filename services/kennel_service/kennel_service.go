package kennel_service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/models/booking_models"
	"github.com/sagarikadotcom/canaan-pet-resort/models/kennel_models"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
)

type KennelRepository interface {
	ListKennels(ctx context.Context) ([]kennel_models.Kennel, error)
	GetKennelByID(ctx context.Context, id uuid.UUID) (*kennel_models.Kennel, error)
}

type KennelCache interface {
	Get(ctx context.Context) ([]kennel_models.Kennel, bool, error)
	Set(ctx context.Context, kennels []kennel_models.Kennel) error
}

// BookingPatcher applies a validated patch in a single write.
type BookingPatcher interface {
	Patch(ctx context.Context, id uuid.UUID, patch booking_models.BookingPatch) (*booking_models.Booking, error)
}

type KennelService struct {
	kennels  KennelRepository
	cache    KennelCache
	bookings BookingPatcher
}

// NewKennelService builds the service. cache may be nil.
func NewKennelService(kennels KennelRepository, cache KennelCache, bookings BookingPatcher) *KennelService {
	return &KennelService{kennels: kennels, cache: cache, bookings: bookings}
}

// ListKennels reads through the cache. Cache errors are logged and the
// database is used instead.
func (s *KennelService) ListKennels(ctx context.Context) ([]kennel_models.Kennel, error) {
	if s.cache != nil {
		kennels, hit, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			logger.WarnLogger.Warnf("Kennel cache read failed: %v", err)
		case hit:
			return kennels, nil
		}
	}

	kennels, err := s.kennels.ListKennels(ctx)
	if err != nil {
		return nil, utils.InternalError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, kennels); err != nil {
			logger.WarnLogger.Warnf("Kennel cache write failed: %v", err)
		}
	}
	return kennels, nil
}

func (s *KennelService) GetKennel(ctx context.Context, rawID string) (*kennel_models.Kennel, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, utils.ValidationError("Invalid kennel ID")
	}
	k, err := s.kennels.GetKennelByID(ctx, id)
	if err != nil {
		if errors.Is(err, kennel_models.ErrKennelNotFound) {
			return nil, utils.NotFoundError("Kennel not found")
		}
		return nil, utils.InternalError(err)
	}
	return k, nil
}

// SubKennelOptions lists the sub-kennels of one kennel only.
func (s *KennelService) SubKennelOptions(ctx context.Context, rawKennelID string) ([]kennel_models.SubKennel, error) {
	k, err := s.GetKennel(ctx, rawKennelID)
	if err != nil {
		return nil, err
	}
	return k.SubKennels, nil
}

type CheckInRequest struct {
	BookingID       string  `json:"bookingId"`
	KennelID        *string `json:"kennelId"`
	SubKennelNumber *int    `json:"subKennelNumber"`
}

// ConfirmCheckIn marks the booking CheckedIn and records the kennel placement
// in the same update. Nothing is written if any check fails.
func (s *KennelService) ConfirmCheckIn(ctx context.Context, req CheckInRequest) (*booking_models.Booking, error) {
	if strings.TrimSpace(req.BookingID) == "" {
		return nil, utils.ValidationError("Booking ID is required")
	}
	bookingID, err := uuid.Parse(strings.TrimSpace(req.BookingID))
	if err != nil {
		return nil, utils.ValidationError("Invalid booking ID")
	}

	checkedIn := booking_models.BoardingCheckedIn
	patch := booking_models.BookingPatch{BoardingStatus: &checkedIn}

	hasKennel := req.KennelID != nil && strings.TrimSpace(*req.KennelID) != ""
	if req.SubKennelNumber != nil && !hasKennel {
		return nil, utils.ValidationError("Kennel ID is required when a sub-kennel is selected")
	}
	if hasKennel {
		kennel, err := s.GetKennel(ctx, *req.KennelID)
		if err != nil {
			return nil, err
		}
		if req.SubKennelNumber != nil && !kennel.HasSubKennel(*req.SubKennelNumber) {
			return nil, utils.ValidationError("Sub-kennel does not belong to kennel")
		}
		patch.KennelID = &kennel.ID
		patch.SubKennelNumber = req.SubKennelNumber
	}

	booking, err := s.bookings.Patch(ctx, bookingID, patch)
	if err != nil {
		return nil, err
	}
	logger.InfoLogger.Infof("Booking %s checked in", bookingID)
	return booking, nil
}
