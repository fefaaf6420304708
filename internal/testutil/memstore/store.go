// Package memstore is an in-memory implementation of the storage layer used by
// use case tests. Transactions are serialized and rolled back on error, which
// mirrors the equipment row lock the Postgres repositories rely on.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/booking"
	equipmentRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/equipment"
	notificationRepo "github.com/m04kA/AgriRent-BookingService/internal/infra/storage/notification"
)

// ErrInjected is returned by a repository call armed with FailNext*
var ErrInjected = errors.New("memstore: injected failure")

type txKey struct{}

type state struct {
	equipment     map[int64]domain.Equipment
	bookings      map[int64]domain.Booking
	notifications []domain.Notification
	nextID        int64
}

// Store holds all tables
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   state

	// notification inserts left before an injected failure, -1 disables it
	failNotificationIn int
}

func New() *Store {
	return &Store{st: state{
		equipment: make(map[int64]domain.Equipment),
		bookings:  make(map[int64]domain.Booking),
		nextID:    1,
	}, failNotificationIn: -1}
}

// FailNextNotification makes the next notification insert fail
func (s *Store) FailNextNotification() {
	s.FailNotificationAfter(0)
}

// FailNotificationAfter lets n notification inserts succeed and fails the following one
func (s *Store) FailNotificationAfter(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNotificationIn = n
}

// AddEquipment seeds a listing and returns its id
func (s *Store) AddEquipment(e domain.Equipment) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.st.nextID
	s.st.nextID++
	s.st.equipment[e.ID] = e
	return e.ID
}

// AddBooking seeds a booking and returns its id
func (s *Store) AddBooking(b domain.Booking) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.st.nextID
	s.st.nextID++
	s.st.bookings[b.ID] = b
	return b.ID
}

// Booking returns a copy of the stored booking
func (s *Store) Booking(id int64) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.bookings[id]
	return b, ok
}

// BookingCount number of stored bookings
func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.bookings)
}

// NotificationsFor returns the notifications sent to userID in insertion order
func (s *Store) NotificationsFor(userID int64) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, 0)
	for _, n := range s.st.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) snapshot() state {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := state{
		equipment:     make(map[int64]domain.Equipment, len(s.st.equipment)),
		bookings:      make(map[int64]domain.Booking, len(s.st.bookings)),
		notifications: append([]domain.Notification(nil), s.st.notifications...),
		nextID:        s.st.nextID,
	}
	for k, v := range s.st.equipment {
		cp.equipment[k] = v
	}
	for k, v := range s.st.bookings {
		cp.bookings[k] = v
	}
	return cp
}

func (s *Store) restore(st state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = st
}

// TxManager returns a transaction manager over the store
func (s *Store) TxManager() *TxManager {
	return &TxManager{s: s}
}

// TxManager serializes transactions and restores the snapshot on error
type TxManager struct {
	s *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	snap := m.s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.s.restore(snap)
		return err
	}
	return nil
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// Equipment repository view
func (s *Store) Equipment() *EquipmentRepo { return &EquipmentRepo{s: s} }

// Bookings repository view
func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }

// Notifications repository view
func (s *Store) Notifications() *NotificationRepo { return &NotificationRepo{s: s} }

type EquipmentRepo struct{ s *Store }

func (r *EquipmentRepo) Create(_ context.Context, e *domain.Equipment) (*domain.Equipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = r.s.st.nextID
	r.s.st.nextID++
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	r.s.st.equipment[e.ID] = *e
	return e, nil
}

func (r *EquipmentRepo) GetByID(_ context.Context, id int64) (*domain.Equipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.st.equipment[id]
	if !ok {
		return nil, equipmentRepo.ErrEquipmentNotFound
	}
	return &e, nil
}

func (r *EquipmentRepo) LockByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	return r.GetByID(ctx, id)
}

func (r *EquipmentRepo) ListAvailable(_ context.Context, today time.Time) ([]*domain.Equipment, error) {
	return r.filter(func(e domain.Equipment) bool { return e.IsListed(today) }), nil
}

func (r *EquipmentRepo) GetByOwner(_ context.Context, ownerID int64) ([]*domain.Equipment, error) {
	return r.filter(func(e domain.Equipment) bool { return e.OwnerID == ownerID }), nil
}

func (r *EquipmentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.equipment[id]; !ok {
		return equipmentRepo.ErrEquipmentNotFound
	}
	delete(r.s.st.equipment, id)
	for bid, b := range r.s.st.bookings {
		if b.EquipmentID == id {
			delete(r.s.st.bookings, bid)
		}
	}
	return nil
}

func (r *EquipmentRepo) filter(keep func(domain.Equipment) bool) []*domain.Equipment {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Equipment, 0)
	for _, e := range r.s.st.equipment {
		if keep(e) {
			e := e
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

type BookingRepo struct{ s *Store }

func (r *BookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID = r.s.st.nextID
	r.s.st.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.s.st.bookings[b.ID] = *b
	return b, nil
}

func (r *BookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.st.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepo) GetLiveByEquipment(_ context.Context, equipmentID int64) ([]*domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool { return b.EquipmentID == equipmentID && b.IsLive() }), nil
}

func (r *BookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool {
		return b.UserID == userID && (status == nil || b.Status == *status)
	}), nil
}

func (r *BookingRepo) GetByOwnerWithFilter(_ context.Context, f domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool {
		return b.OwnerID == f.OwnerID &&
			(f.EquipmentID == nil || b.EquipmentID == *f.EquipmentID) &&
			(f.Status == nil || b.Status == *f.Status)
	}), nil
}

func (r *BookingRepo) CountLiveEndingAfter(_ context.Context, equipmentID int64, from time.Time) (int, error) {
	live := r.filter(func(b domain.Booking) bool {
		return b.EquipmentID == equipmentID && b.IsLive() && !b.EndDate.Before(domain.DateOf(from))
	})
	return len(live), nil
}

func (r *BookingRepo) TransitionFromPending(_ context.Context, id int64, to domain.BookingStatus, reason *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.st.bookings[id]
	if !ok || b.Status != domain.StatusPending {
		return bookingRepo.ErrStatusChanged
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	if to == domain.StatusCancelled {
		now := b.UpdatedAt
		b.CancelledAt = &now
		b.CancellationReason = reason
	}
	r.s.st.bookings[id] = b
	return nil
}

func (r *BookingRepo) filter(keep func(domain.Booking) bool) []*domain.Booking {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Booking, 0)
	for _, b := range r.s.st.bookings {
		if keep(b) {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type NotificationRepo struct{ s *Store }

func (r *NotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failNotificationIn == 0 {
		r.s.failNotificationIn = -1
		return nil, ErrInjected
	}
	if r.s.failNotificationIn > 0 {
		r.s.failNotificationIn--
	}
	n.ID = r.s.st.nextID
	r.s.st.nextID++
	n.CreatedAt = time.Now()
	r.s.st.notifications = append(r.s.st.notifications, *n)
	return n, nil
}

func (r *NotificationRepo) GetByUserID(_ context.Context, userID int64, unreadOnly bool) ([]*domain.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Notification, 0)
	for i := len(r.s.st.notifications) - 1; i >= 0; i-- {
		n := r.s.st.notifications[i]
		if n.UserID == userID && (!unreadOnly || !n.IsRead) {
			out = append(out, &n)
		}
	}
	return out, nil
}

func (r *NotificationRepo) MarkRead(_ context.Context, id, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.st.notifications {
		if r.s.st.notifications[i].ID == id && r.s.st.notifications[i].UserID == userID {
			r.s.st.notifications[i].IsRead = true
			return nil
		}
	}
	return notificationRepo.ErrNotificationNotFound
}

func (r *NotificationRepo) DeleteReadBefore(_ context.Context, before time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.st.notifications[:0]
	var deleted int64
	for _, n := range r.s.st.notifications {
		if n.IsRead && n.CreatedAt.Before(before) {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	r.s.st.notifications = kept
	return deleted, nil
}
