package get_appointments

import (
	"context"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	"github.com/dsmirn0v/AQS-BookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListForPrincipal(ctx context.Context, principal domain.Principal) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
