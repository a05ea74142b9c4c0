package service

import (
	"context"
	"sync"

	"github.com/Emmanuel-365/event-app/internal/domain"
	"github.com/Emmanuel-365/event-app/internal/notifier"
	"github.com/Emmanuel-365/event-app/internal/repository"
	"github.com/Emmanuel-365/event-app/pkg/logger"
)

func newTestLogger(t interface{ Fatalf(string, ...interface{}) }) *logger.Logger {
	log, err := logger.New(&logger.Config{Level: "error", ServiceName: "test", Development: true})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return log
}

type mockEventRepo struct {
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Event, error)
	CreateFunc          func(ctx context.Context, event *domain.Event) error
	ListFunc            func(ctx context.Context, limit, offset int) ([]*domain.Event, error)
	ListByOrganizerFunc func(ctx context.Context, organizerID string) ([]*domain.Event, error)
	UpdateFunc          func(ctx context.Context, event *domain.Event) (*domain.Event, error)
	DeleteFunc          func(ctx context.Context, id string) error
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	return m.CreateFunc(ctx, event)
}
func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockEventRepo) List(ctx context.Context, limit, offset int) ([]*domain.Event, error) {
	return m.ListFunc(ctx, limit, offset)
}
func (m *mockEventRepo) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	return m.ListByOrganizerFunc(ctx, organizerID)
}
func (m *mockEventRepo) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	return m.UpdateFunc(ctx, event)
}
func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockSubscriptionRepo struct {
	CreateWithReservationFunc func(ctx context.Context, sub *domain.Subscription) error
	DeleteWithReleaseFunc     func(ctx context.Context, sub *domain.Subscription) error
	GetByIDFunc               func(ctx context.Context, id string) (*domain.Subscription, error)
	GetByCodeFunc             func(ctx context.Context, ticketCode string) (*domain.Subscription, error)
	ListByUserFunc            func(ctx context.Context, userID string) ([]*domain.Subscription, error)
	ListByEventFunc           func(ctx context.Context, eventID string) ([]*domain.Subscription, error)
	ExistsCodeFunc            func(ctx context.Context, ticketCode string) (bool, error)
	UpdateStatusFunc          func(ctx context.Context, id string, from, to domain.SubscriptionStatus) error
}

func (m *mockSubscriptionRepo) CreateWithReservation(ctx context.Context, sub *domain.Subscription) error {
	return m.CreateWithReservationFunc(ctx, sub)
}
func (m *mockSubscriptionRepo) DeleteWithRelease(ctx context.Context, sub *domain.Subscription) error {
	return m.DeleteWithReleaseFunc(ctx, sub)
}
func (m *mockSubscriptionRepo) GetByID(ctx context.Context, id string) (*domain.Subscription, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockSubscriptionRepo) GetByCode(ctx context.Context, ticketCode string) (*domain.Subscription, error) {
	return m.GetByCodeFunc(ctx, ticketCode)
}
func (m *mockSubscriptionRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Subscription, error) {
	return m.ListByUserFunc(ctx, userID)
}
func (m *mockSubscriptionRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Subscription, error) {
	return m.ListByEventFunc(ctx, eventID)
}
func (m *mockSubscriptionRepo) ExistsCode(ctx context.Context, ticketCode string) (bool, error) {
	return m.ExistsCodeFunc(ctx, ticketCode)
}
func (m *mockSubscriptionRepo) UpdateStatus(ctx context.Context, id string, from, to domain.SubscriptionStatus) error {
	return m.UpdateStatusFunc(ctx, id, from, to)
}

type mockCategoryRepo struct {
	GetByIDFunc     func(ctx context.Context, id string) (*domain.TicketCategory, error)
	CreateFunc      func(ctx context.Context, cat *domain.TicketCategory) error
	ListByEventFunc func(ctx context.Context, eventID string) ([]*domain.TicketCategory, error)
	UpdateFunc      func(ctx context.Context, cat *domain.TicketCategory) error
	DeleteFunc      func(ctx context.Context, id string) error
}

func (m *mockCategoryRepo) Create(ctx context.Context, cat *domain.TicketCategory) error {
	return m.CreateFunc(ctx, cat)
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*domain.TicketCategory, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockCategoryRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.TicketCategory, error) {
	return m.ListByEventFunc(ctx, eventID)
}
func (m *mockCategoryRepo) Update(ctx context.Context, cat *domain.TicketCategory) error {
	return m.UpdateFunc(ctx, cat)
}
func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockStatsRepo struct {
	EventStatsFunc           func(ctx context.Context, eventID string) (*repository.EventStatsRow, error)
	OrganizerStatsFunc       func(ctx context.Context, organizerID string) ([]*repository.EventStatsRow, error)
	TrendingEventsFunc       func(ctx context.Context, limit int) ([]*repository.TrendingRow, error)
	TopLocationsFunc         func(ctx context.Context, limit int) ([]*repository.LocationRow, error)
	SubscriptionsByMonthFunc func(ctx context.Context, organizerID string) ([]*repository.MonthRow, error)
	LocationPerformanceFunc  func(ctx context.Context, organizerID string) ([]*repository.LocationPerformanceRow, error)
	MonthPerformanceFunc     func(ctx context.Context, organizerID string) ([]*repository.MonthPerformanceRow, error)
}

func (m *mockStatsRepo) EventStats(ctx context.Context, eventID string) (*repository.EventStatsRow, error) {
	return m.EventStatsFunc(ctx, eventID)
}
func (m *mockStatsRepo) OrganizerStats(ctx context.Context, organizerID string) ([]*repository.EventStatsRow, error) {
	return m.OrganizerStatsFunc(ctx, organizerID)
}
func (m *mockStatsRepo) TrendingEvents(ctx context.Context, limit int) ([]*repository.TrendingRow, error) {
	return m.TrendingEventsFunc(ctx, limit)
}
func (m *mockStatsRepo) TopLocations(ctx context.Context, limit int) ([]*repository.LocationRow, error) {
	return m.TopLocationsFunc(ctx, limit)
}
func (m *mockStatsRepo) SubscriptionsByMonth(ctx context.Context, organizerID string) ([]*repository.MonthRow, error) {
	return m.SubscriptionsByMonthFunc(ctx, organizerID)
}
func (m *mockStatsRepo) LocationPerformance(ctx context.Context, organizerID string) ([]*repository.LocationPerformanceRow, error) {
	return m.LocationPerformanceFunc(ctx, organizerID)
}
func (m *mockStatsRepo) MonthPerformance(ctx context.Context, organizerID string) ([]*repository.MonthPerformanceRow, error) {
	return m.MonthPerformanceFunc(ctx, organizerID)
}

type mockUserRepo struct {
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

type mockNotifier struct {
	mu   sync.Mutex
	sent []notifier.TicketEmail
}

func (m *mockNotifier) SendTicket(ctx context.Context, email notifier.TicketEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return nil
}

// fakeSubscriptionStore keeps subscriptions and event capacity in memory
// with the same guarantees the SQL layer gives: a reservation and its
// capacity decrement succeed or fail together, ticket codes are unique,
// and remaining places never leave the [0, capacity] range.
type fakeSubscriptionStore struct {
	mu        sync.Mutex
	event     *domain.Event
	subs      map[string]*domain.Subscription
	byCode    map[string]string
	takenCode map[string]bool
}

func newFakeSubscriptionStore(event *domain.Event) *fakeSubscriptionStore {
	return &fakeSubscriptionStore{
		event:     event,
		subs:      make(map[string]*domain.Subscription),
		byCode:    make(map[string]string),
		takenCode: make(map[string]bool),
	}
}

func (f *fakeSubscriptionStore) CreateWithReservation(ctx context.Context, sub *domain.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if sub.EventID != f.event.ID {
		return domain.ErrNotFound
	}
	if f.event.RemainingPlaces < sub.Places {
		return domain.ErrCapacityExceeded
	}
	if f.takenCode[sub.TicketCode] {
		return domain.ErrCodeConflict
	}

	f.event.RemainingPlaces -= sub.Places
	cp := *sub
	f.subs[sub.ID] = &cp
	f.byCode[sub.TicketCode] = sub.ID
	f.takenCode[sub.TicketCode] = true
	return nil
}

func (f *fakeSubscriptionStore) DeleteWithRelease(ctx context.Context, sub *domain.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.subs[sub.ID]
	if !ok {
		return domain.ErrNotFound
	}
	delete(f.subs, sub.ID)
	delete(f.byCode, stored.TicketCode)
	f.event.RemainingPlaces += stored.Places
	return nil
}

func (f *fakeSubscriptionStore) GetByID(ctx context.Context, id string) (*domain.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sub, ok := f.subs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *sub
	return &cp, nil
}

func (f *fakeSubscriptionStore) GetByCode(ctx context.Context, ticketCode string) (*domain.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byCode[ticketCode]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *f.subs[id]
	return &cp, nil
}

func (f *fakeSubscriptionStore) ListByUser(ctx context.Context, userID string) ([]*domain.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Subscription
	for _, sub := range f.subs {
		if sub.UserID == userID {
			cp := *sub
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionStore) ListByEvent(ctx context.Context, eventID string) ([]*domain.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Subscription
	for _, sub := range f.subs {
		if sub.EventID == eventID {
			cp := *sub
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionStore) ExistsCode(ctx context.Context, ticketCode string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.takenCode[ticketCode], nil
}

func (f *fakeSubscriptionStore) UpdateStatus(ctx context.Context, id string, from, to domain.SubscriptionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sub, ok := f.subs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if sub.Status != from {
		if sub.Status == domain.SubscriptionUsed {
			return domain.ErrTicketAlreadyUsed
		}
		return domain.ErrInvalidState
	}
	sub.Status = to
	return nil
}

func (f *fakeSubscriptionStore) remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.event.RemainingPlaces
}
