package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"
)

// Service сервис каталога: специалисты и предложенные слоты
type Service struct {
	store  EntityStore
	ids    IDGenerator
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(store EntityStore, ids IDGenerator, logger Logger) *Service {
	return &Service{
		store:  store,
		ids:    ids,
		logger: logger,
	}
}

// RegisterProfessional добавляет специалиста в каталог
func (s *Service) RegisterProfessional(ctx context.Context, req *models.RegisterProfessionalRequest) (*domain.Professional, error) {
	professional := domain.Professional{
		ID:            s.ids.New(),
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		Specialty:     req.Specialty,
		Email:         req.Email,
	}

	err := s.store.Mutate(ctx, func(snap *entitystore.Snapshot) error {
		snap.AddProfessional(professional)
		return nil
	})
	if err != nil {
		s.logger.Error("RegisterProfessional: failed to persist professional %s: %v", professional.ID, err)
		return nil, fmt.Errorf("%w: RegisterProfessional - persist: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterProfessional: registered professional id=%s", professional.ID)
	return &professional, nil
}

// ListProfessionals возвращает специалистов в порядке регистрации
func (s *Service) ListProfessionals(ctx context.Context) ([]domain.Professional, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.View(ctx).Professionals(), nil
}

// GetProfessional возвращает специалиста по ID
func (s *Service) GetProfessional(ctx context.Context, id string) (*domain.Professional, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	professional, ok := s.store.View(ctx).FindProfessional(id)
	if !ok {
		return nil, ErrProfessionalNotFound
	}
	return &professional, nil
}

// OfferSlot добавляет свободный слот специалиста
// Существование специалиста не проверяется
func (s *Service) OfferSlot(ctx context.Context, req *models.OfferSlotRequest) (*domain.Slot, error) {
	if strings.TrimSpace(req.ProfessionalID) == "" {
		s.logger.Warn("OfferSlot: professional is not selected")
		return nil, ErrValidation
	}

	slot := domain.Slot{
		ID:              s.ids.New(),
		ProfessionalID:  req.ProfessionalID,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	}

	err := s.store.Mutate(ctx, func(snap *entitystore.Snapshot) error {
		snap.AddSlot(slot)
		return nil
	})
	if err != nil {
		s.logger.Error("OfferSlot: failed to persist slot for professional=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: OfferSlot - persist: %v", ErrInternal, err)
	}

	s.logger.Info("OfferSlot: offered slot id=%s for professional=%s at %s",
		slot.ID, slot.ProfessionalID, slot.StartTime.Format(timeLogFormat))
	return &slot, nil
}

// WithdrawSlot удаляет свободный слот, отсутствующий ID не является ошибкой
func (s *Service) WithdrawSlot(ctx context.Context, slotID string) error {
	var removed bool
	err := s.store.Mutate(ctx, func(snap *entitystore.Snapshot) error {
		removed = snap.RemoveSlot(slotID)
		return nil
	})
	if err != nil {
		s.logger.Error("WithdrawSlot: failed to persist removal of slot %s: %v", slotID, err)
		return fmt.Errorf("%w: WithdrawSlot - persist: %v", ErrInternal, err)
	}

	if removed {
		s.logger.Info("WithdrawSlot: slot id=%s withdrawn", slotID)
	}
	return nil
}

// ResetAll удаляет все коллекции
// Подтверждение операции остается на стороне вызывающего
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.store.ResetAll(ctx); err != nil {
		s.logger.Error("ResetAll: %v", err)
		return fmt.Errorf("%w: ResetAll: %v", ErrInternal, err)
	}
	s.logger.Warn("ResetAll: all reservation data removed")
	return nil
}
