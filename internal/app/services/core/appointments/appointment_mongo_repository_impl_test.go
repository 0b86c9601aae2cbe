package appointments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return fmt.Sprintf("%s.%s", mt.DB.Name(), mt.Coll.Name())
}

func TestAppointmentMongoRepository_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id and normalizes date", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		slotID := primitive.NewObjectID()
		appointment, err := repo.Insert(context.Background(), &models.Appointment{
			Name:     "Ann",
			Phone:    "0123456789",
			Date:     time.Date(2025, 6, 1, 13, 30, 0, 0, time.UTC),
			Time:     "10:00",
			Status:   constvars.AppointmentStatusPending,
			TimeSlot: &slotID,
		})

		require.NoError(mt, err)
		assert.False(mt, appointment.ID.IsZero())
		assert.Equal(mt, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), appointment.Date)
		assert.False(mt, appointment.CreatedAt.IsZero())
	})

	mt.Run("store error", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))

		_, err := repo.Insert(context.Background(), &models.Appointment{Name: "Ann"})
		assert.True(mt, exceptions.IsKind(err, constvars.ErrKindInternal))
	})
}

func TestAppointmentMongoRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	appointmentID := primitive.NewObjectID()

	mt.Run("missing", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		appointment, err := repo.FindByID(context.Background(), appointmentID)
		assert.NoError(mt, err)
		assert.Nil(mt, appointment)
	})

	mt.Run("found", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: appointmentID},
			{Key: "name", Value: "Ann"},
			{Key: "phone", Value: "0123456789"},
			{Key: "time", Value: "10:00"},
			{Key: "status", Value: constvars.AppointmentStatusApproved},
		}))

		appointment, err := repo.FindByID(context.Background(), appointmentID)
		require.NoError(mt, err)
		assert.Equal(mt, "Ann", appointment.Name)
		assert.Equal(mt, constvars.AppointmentStatusApproved, appointment.Status)
		assert.Nil(mt, appointment.TimeSlot)
	})
}

func TestAppointmentMongoRepository_FindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes every document", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		first := mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Bea"},
		})
		second := mtest.CreateCursorResponse(1, namespace(mt), mtest.NextBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Ann"},
		})
		end := mtest.CreateCursorResponse(0, namespace(mt), mtest.NextBatch)
		mt.AddMockResponses(first, second, end)

		appointments, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, appointments, 2)
		assert.Equal(mt, "Bea", appointments[0].Name)
		assert.Equal(mt, "Ann", appointments[1].Name)
	})
}

func TestAppointmentMongoRepository_UpdateStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	appointmentID := primitive.NewObjectID()

	mt.Run("matched", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		updated, err := repo.UpdateStatus(context.Background(), appointmentID, constvars.AppointmentStatusPending, constvars.AppointmentStatusApproved)
		require.NoError(mt, err)
		assert.True(mt, updated)
	})

	mt.Run("status changed underneath", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		updated, err := repo.UpdateStatus(context.Background(), appointmentID, constvars.AppointmentStatusPending, constvars.AppointmentStatusApproved)
		require.NoError(mt, err)
		assert.False(mt, updated)
	})
}
