package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	apptRepo "github.com/dsmirn0v/AQS-BookingService/internal/infra/storage/appointment"
	"github.com/dsmirn0v/AQS-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// ListForPrincipal получает бронирования с учетом роли:
// клиент видит только свои, staff/admin видят все.
// Сортировка по дате по убыванию. Пагинации нет - объём бронирований мал;
// это ограничение масштабирования, а не корректности
func (s *Service) ListForPrincipal(ctx context.Context, principal domain.Principal) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListForPrincipal: user=%d, role=%s", principal.UserID, principal.Role)

	filter := domain.AppointmentFilter{}
	if !principal.Role.CanViewAllAppointments() {
		filter.UserID = &principal.UserID
	}

	appointments, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListForPrincipal: repository error for user=%d: %v", principal.UserID, err)
		return nil, fmt.Errorf("%w: ListForPrincipal - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForPrincipal: successfully fetched %d appointments for user=%d",
		len(appointments), principal.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus переводит бронирование в новый статус
// Доступно только staff/admin; допустимые переходы:
// PENDING -> CONFIRMED/CANCELLED, CONFIRMED -> CANCELLED
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.Principal.UserID)

	if !req.Principal.Role.CanUpdateAppointmentStatus() {
		s.logger.Warn("UpdateStatus: access denied for user=%d role=%s",
			req.Principal.UserID, req.Principal.Role)
		return ErrAccessDenied
	}

	newStatus, ok := domain.ParseAppointmentStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment id=%d", req.Status, appointmentID)
		return ErrInvalidStatus
	}

	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !appt.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%d",
			appt.Status, newStatus, appointmentID)
		return ErrInvalidTransition
	}

	if err := s.apptRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved to status=%s", appointmentID, newStatus)
	return nil
}
