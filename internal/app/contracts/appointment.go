package contracts

import (
	"context"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/dto/requests"
	"glamslot-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]*models.Appointment, error)
	UpdateStatus(ctx context.Context, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
	ExportAppointments(ctx context.Context) (*responses.ExportAppointments, error)
}

type AppointmentRepository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]*models.Appointment, error)
	// UpdateStatus only writes when the stored status still equals from.
	UpdateStatus(ctx context.Context, appointmentID primitive.ObjectID, from, to string) (bool, error)
}
