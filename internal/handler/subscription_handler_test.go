package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Emmanuel-365/event-app/internal/domain"
	"github.com/Emmanuel-365/event-app/internal/dto"
	"github.com/Emmanuel-365/event-app/pkg/middleware"
)

type mockSubscriptionService struct {
	ReserveFunc        func(ctx context.Context, requester domain.Identity, req *dto.ReserveRequest) (*domain.Subscription, error)
	ConfirmPaymentFunc func(ctx context.Context, requester domain.Identity, id string) (*domain.Subscription, error)
	CancelFunc         func(ctx context.Context, requester domain.Identity, id string) error
	ValidateAtDoorFunc func(ctx context.Context, requester domain.Identity, code string) (*domain.Subscription, error)
	GetByIDFunc        func(ctx context.Context, requester domain.Identity, id string) (*domain.Subscription, error)
	ListMineFunc       func(ctx context.Context, requester domain.Identity) ([]*domain.Subscription, error)
	ListForEventFunc   func(ctx context.Context, requester domain.Identity, eventID string) ([]*domain.Subscription, error)
}

func (m *mockSubscriptionService) Reserve(ctx context.Context, r domain.Identity, req *dto.ReserveRequest) (*domain.Subscription, error) {
	return m.ReserveFunc(ctx, r, req)
}
func (m *mockSubscriptionService) ConfirmPayment(ctx context.Context, r domain.Identity, id string) (*domain.Subscription, error) {
	return m.ConfirmPaymentFunc(ctx, r, id)
}
func (m *mockSubscriptionService) Cancel(ctx context.Context, r domain.Identity, id string) error {
	return m.CancelFunc(ctx, r, id)
}
func (m *mockSubscriptionService) ValidateAtDoor(ctx context.Context, r domain.Identity, code string) (*domain.Subscription, error) {
	return m.ValidateAtDoorFunc(ctx, r, code)
}
func (m *mockSubscriptionService) GetByID(ctx context.Context, r domain.Identity, id string) (*domain.Subscription, error) {
	return m.GetByIDFunc(ctx, r, id)
}
func (m *mockSubscriptionService) ListMine(ctx context.Context, r domain.Identity) ([]*domain.Subscription, error) {
	return m.ListMineFunc(ctx, r)
}
func (m *mockSubscriptionService) ListForEvent(ctx context.Context, r domain.Identity, eventID string) ([]*domain.Subscription, error) {
	return m.ListForEventFunc(ctx, r, eventID)
}

func setupRouter(svc *mockSubscriptionService, userID string, role domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stand-in for the JWT middleware
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Set(middleware.ContextRoleKey, role.String())
	})

	h := NewSubscriptionHandler(svc)
	r.POST("/subscriptions", h.Reserve)
	r.POST("/subscriptions/:id/confirm", h.ConfirmPayment)
	r.DELETE("/subscriptions/:id", h.Cancel)
	r.POST("/tickets/validate", h.ValidateAtDoor)
	return r
}

func TestSubscriptionHandler_Reserve(t *testing.T) {
	eventID := "7f6c1c1e-0000-4000-8000-000000000001"
	catID := "7f6c1c1e-0000-4000-8000-000000000002"

	svc := &mockSubscriptionService{
		ReserveFunc: func(ctx context.Context, r domain.Identity, req *dto.ReserveRequest) (*domain.Subscription, error) {
			if r.UserID != "user-1" || r.Role != domain.RoleVisitor {
				t.Errorf("requester = %+v, want user-1/VISITOR", r)
			}
			return domain.NewSubscription(req.EventID, req.CategoryID, r.UserID, "TICKET-AB12CD34", req.Places, 1000), nil
		},
	}
	r := setupRouter(svc, "user-1", domain.RoleVisitor)

	body, _ := json.Marshal(dto.ReserveRequest{EventID: eventID, CategoryID: catID, Places: 2})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp struct {
		Success bool                     `json:"success"`
		Data    dto.SubscriptionResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Data.TicketCode != "TICKET-AB12CD34" {
		t.Errorf("ticket_code = %q, want TICKET-AB12CD34", resp.Data.TicketCode)
	}
	if resp.Data.Status != "EN_ATTENTE" {
		t.Errorf("status = %q, want EN_ATTENTE", resp.Data.Status)
	}
}

func TestSubscriptionHandler_Reserve_InvalidBody(t *testing.T) {
	svc := &mockSubscriptionService{}
	r := setupRouter(svc, "user-1", domain.RoleVisitor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader([]byte(`{"places": 0}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSubscriptionHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"capacity exceeded", domain.ErrCapacityExceeded, http.StatusConflict, "CAPACITY_EXCEEDED"},
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"code generation exhausted", domain.ErrCodeConflict, http.StatusServiceUnavailable, "CODE_GENERATION_EXHAUSTED"},
	}

	eventID := "7f6c1c1e-0000-4000-8000-000000000001"
	catID := "7f6c1c1e-0000-4000-8000-000000000002"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSubscriptionService{
				ReserveFunc: func(ctx context.Context, r domain.Identity, req *dto.ReserveRequest) (*domain.Subscription, error) {
					return nil, tt.err
				},
			}
			r := setupRouter(svc, "user-1", domain.RoleVisitor)

			body, _ := json.Marshal(dto.ReserveRequest{EventID: eventID, CategoryID: catID, Places: 1})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestSubscriptionHandler_ValidateAtDoor(t *testing.T) {
	svc := &mockSubscriptionService{
		ValidateAtDoorFunc: func(ctx context.Context, r domain.Identity, code string) (*domain.Subscription, error) {
			if code != "TICKET-AB12CD34" {
				return nil, domain.ErrNotFound
			}
			return &domain.Subscription{ID: "sub-1", TicketCode: code, Status: domain.SubscriptionUsed}, nil
		},
	}
	r := setupRouter(svc, "org-1", domain.RoleOrganizer)

	body, _ := json.Marshal(dto.ValidateTicketRequest{TicketCode: "TICKET-AB12CD34"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Data dto.SubscriptionResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Data.Status != "UTILISE" {
		t.Errorf("status = %q, want UTILISE", resp.Data.Status)
	}
}

func TestSubscriptionHandler_AlreadyUsedTicket(t *testing.T) {
	svc := &mockSubscriptionService{
		ValidateAtDoorFunc: func(ctx context.Context, r domain.Identity, code string) (*domain.Subscription, error) {
			return nil, domain.ErrTicketAlreadyUsed
		},
	}
	r := setupRouter(svc, "org-1", domain.RoleOrganizer)

	body, _ := json.Marshal(dto.ValidateTicketRequest{TicketCode: "TICKET-AB12CD34"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}
