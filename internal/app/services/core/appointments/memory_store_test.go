package appointments

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"glamslot-service/internal/app/models"
	"glamslot-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("store unavailable")

// memoryStore keeps slots and appointments behind one mutex and applies the
// same conditional predicates as the mongo repositories.
type memoryStore struct {
	mu           sync.Mutex
	slots        map[primitive.ObjectID]models.TimeSlot
	appointments map[primitive.ObjectID]models.Appointment
	writes       int

	failMarkBooked bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		slots:        make(map[primitive.ObjectID]models.TimeSlot),
		appointments: make(map[primitive.ObjectID]models.Appointment),
	}
}

func (s *memoryStore) addSlot(date time.Time, slotTime string) models.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := models.TimeSlot{
		ID:   primitive.NewObjectID(),
		Date: utils.NormalizeDate(date),
		Time: slotTime,
	}
	s.slots[slot.ID] = slot
	return slot
}

func (s *memoryStore) slot(id primitive.ObjectID) models.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[id]
}

func (s *memoryStore) appointmentList() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]models.Appointment, 0, len(s.appointments))
	for _, appointment := range s.appointments {
		list = append(list, appointment)
	}
	return list
}

func (s *memoryStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

type memorySlotRepository struct {
	store *memoryStore
}

func (r *memorySlotRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (r *memorySlotRepository) Insert(ctx context.Context, slot *models.TimeSlot) (*models.TimeSlot, error) {
	created := r.store.addSlot(slot.Date, slot.Time)
	return &created, nil
}

func (r *memorySlotRepository) InsertManyIgnoreDuplicates(ctx context.Context, slots []*models.TimeSlot) (int, error) {
	for _, slot := range slots {
		r.store.addSlot(slot.Date, slot.Time)
	}
	return len(slots), nil
}

func (r *memorySlotRepository) CountByDay(ctx context.Context, day utils.DayRange) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, slot := range r.store.slots {
		if day.Contains(slot.Date) {
			count++
		}
	}
	return count, nil
}

func (r *memorySlotRepository) FindAvailableByDay(ctx context.Context, day utils.DayRange) ([]*models.TimeSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	slots := make([]*models.TimeSlot, 0)
	for _, slot := range r.store.slots {
		if day.Contains(slot.Date) && !slot.IsBooked {
			copied := slot
			slots = append(slots, &copied)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })
	return slots, nil
}

func (r *memorySlotRepository) FindByDayAndTime(ctx context.Context, day utils.DayRange, slotTime string) (*models.TimeSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, slot := range r.store.slots {
		if day.Contains(slot.Date) && slot.Time == slotTime {
			copied := slot
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memorySlotRepository) FindByID(ctx context.Context, slotID primitive.ObjectID) (*models.TimeSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	slot, ok := r.store.slots[slotID]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

func (r *memorySlotRepository) FindAllWithBooker(ctx context.Context, day *utils.DayRange) ([]*models.TimeSlotWithBooker, error) {
	return nil, nil
}

func (r *memorySlotRepository) MarkBooked(ctx context.Context, slotID, appointmentID primitive.ObjectID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failMarkBooked {
		return false, errStoreDown
	}
	slot, ok := r.store.slots[slotID]
	if !ok || slot.IsBooked {
		return false, nil
	}
	slot.IsBooked = true
	slot.BookedBy = &appointmentID
	r.store.slots[slotID] = slot
	r.store.writes++
	return true, nil
}

func (r *memorySlotRepository) MarkReleased(ctx context.Context, slotID, appointmentID primitive.ObjectID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	slot, ok := r.store.slots[slotID]
	if !ok || !slot.IsBooked || slot.BookedBy == nil || *slot.BookedBy != appointmentID {
		return false, nil
	}
	slot.IsBooked = false
	slot.BookedBy = nil
	r.store.slots[slotID] = slot
	r.store.writes++
	return true, nil
}

func (r *memorySlotRepository) DeleteUnbooked(ctx context.Context, slotID primitive.ObjectID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	slot, ok := r.store.slots[slotID]
	if !ok || slot.IsBooked {
		return false, nil
	}
	delete(r.store.slots, slotID)
	r.store.writes++
	return true, nil
}

type memoryAppointmentRepository struct {
	store *memoryStore
}

func (r *memoryAppointmentRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (r *memoryAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	appointment.ID = primitive.NewObjectID()
	appointment.Date = utils.NormalizeDate(appointment.Date)
	appointment.SetCreatedAtUpdatedAt()
	r.store.appointments[appointment.ID] = *appointment
	r.store.writes++
	created := *appointment
	return &created, nil
}

func (r *memoryAppointmentRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	appointment, ok := r.store.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	return &appointment, nil
}

func (r *memoryAppointmentRepository) FindAll(ctx context.Context) ([]*models.Appointment, error) {
	list := r.store.appointmentList()
	appointments := make([]*models.Appointment, 0, len(list))
	for i := range list {
		appointments = append(appointments, &list[i])
	}
	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].Date.Equal(appointments[j].Date) {
			return appointments[i].Time > appointments[j].Time
		}
		return appointments[i].Date.After(appointments[j].Date)
	})
	return appointments, nil
}

func (r *memoryAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID primitive.ObjectID, from, to string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	appointment, ok := r.store.appointments[appointmentID]
	if !ok || appointment.Status != from {
		return false, nil
	}
	appointment.Status = to
	appointment.SetUpdatedAt()
	r.store.appointments[appointmentID] = appointment
	r.store.writes++
	return true, nil
}

func countStatus(appointments []models.Appointment, status string) int {
	count := 0
	for _, appointment := range appointments {
		if appointment.Status == status {
			count++
		}
	}
	return count
}
