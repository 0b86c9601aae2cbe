package slot

import (
	"context"
	"errors"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/exceptions"
	"glamslot-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDuplicateKeyCode = 11000

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTimeSlots),
	}
}

// EnsureIndexes creates the unique (date, time) index that backs slot uniqueness.
func (r *SlotMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("date_time_unique"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "isBooked", Value: 1}},
			Options: options.Index().SetName("date_is_booked"),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

// Insert returns ErrSlotAlreadyExists when (date, time) is taken.
func (r *SlotMongoRepository) Insert(ctx context.Context, slot *models.TimeSlot) (*models.TimeSlot, error) {
	slot.Date = utils.NormalizeDate(slot.Date)
	slot.SetCreatedAtUpdatedAt()

	result, err := r.Collection.InsertOne(ctx, slot)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrSlotAlreadyExists(err, slot.Date.Format(constvars.DateLayoutYYYYMMDD), slot.Time)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	slot.ID = result.InsertedID.(primitive.ObjectID)
	return slot, nil
}

// InsertManyIgnoreDuplicates inserts unordered and skips documents that hit the
// unique index. It returns how many documents were written.
func (r *SlotMongoRepository) InsertManyIgnoreDuplicates(ctx context.Context, slots []*models.TimeSlot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	documents := make([]interface{}, 0, len(slots))
	for _, slot := range slots {
		slot.Date = utils.NormalizeDate(slot.Date)
		slot.SetCreatedAtUpdatedAt()
		documents = append(documents, slot)
	}

	result, err := r.Collection.InsertMany(ctx, documents, options.InsertMany().SetOrdered(false))
	if err != nil {
		var bulkErr mongo.BulkWriteException
		if errors.As(err, &bulkErr) && onlyDuplicateKeyErrors(bulkErr) {
			return len(slots) - len(bulkErr.WriteErrors), nil
		}
		return 0, exceptions.ErrMongoDBInsertDocument(err)
	}
	return len(result.InsertedIDs), nil
}

func onlyDuplicateKeyErrors(bulkErr mongo.BulkWriteException) bool {
	if bulkErr.WriteConcernError != nil {
		return false
	}
	for _, writeErr := range bulkErr.WriteErrors {
		if writeErr.Code != mongoDuplicateKeyCode {
			return false
		}
	}
	return true
}

func dayFilter(day utils.DayRange) bson.M {
	return bson.M{"$gte": day.Start, "$lt": day.End}
}

func (r *SlotMongoRepository) CountByDay(ctx context.Context, day utils.DayRange) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"date": dayFilter(day)})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocument(err)
	}
	return count, nil
}

func (r *SlotMongoRepository) FindAvailableByDay(ctx context.Context, day utils.DayRange) ([]*models.TimeSlot, error) {
	filter := bson.M{
		"date":     dayFilter(day),
		"isBooked": false,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	slots := make([]*models.TimeSlot, 0)
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBDecodeDocument(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) FindByDayAndTime(ctx context.Context, day utils.DayRange, slotTime string) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	err := r.Collection.FindOne(ctx, bson.M{"date": dayFilter(day), "time": slotTime}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) FindByID(ctx context.Context, slotID primitive.ObjectID) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	err := r.Collection.FindOne(ctx, bson.M{"_id": slotID}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

// FindAllWithBooker joins each slot with the appointment in bookedBy.
func (r *SlotMongoRepository) FindAllWithBooker(ctx context.Context, day *utils.DayRange) ([]*models.TimeSlotWithBooker, error) {
	match := bson.M{}
	if day != nil {
		match["date"] = dayFilter(*day)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constvars.MongoCollectionAppointments},
			{Key: "localField", Value: "bookedBy"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "booker"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$booker"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
			{Key: "isBooked", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
			{Key: "booker._id", Value: 1},
			{Key: "booker.name", Value: 1},
			{Key: "booker.phone", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregateDocument(err)
	}
	defer cursor.Close(ctx)

	slots := make([]*models.TimeSlotWithBooker, 0)
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBDecodeDocument(err)
	}
	return slots, nil
}

// MarkBooked flips isBooked false to true. It reports false when the slot was
// already booked or no longer exists.
func (r *SlotMongoRepository) MarkBooked(ctx context.Context, slotID, appointmentID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": slotID, "isBooked": false}
	update := bson.M{"$set": bson.M{
		"isBooked":  true,
		"bookedBy":  appointmentID,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

// MarkReleased frees the slot only while it is still held by appointmentID.
func (r *SlotMongoRepository) MarkReleased(ctx context.Context, slotID, appointmentID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": slotID, "isBooked": true, "bookedBy": appointmentID}
	update := bson.M{"$set": bson.M{
		"isBooked":  false,
		"bookedBy":  nil,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

// DeleteUnbooked removes the slot only while it is not booked.
func (r *SlotMongoRepository) DeleteUnbooked(ctx context.Context, slotID primitive.ObjectID) (bool, error) {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": slotID, "isBooked": false})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount == 1, nil
}
