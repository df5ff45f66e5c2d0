package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	billMocks "frontdesk/internal/domains/bill/mocks"
	billDto "frontdesk/internal/domains/bill/model/dto"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	customerDto "frontdesk/internal/domains/customer/model/dto"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomDto "frontdesk/internal/domains/room/model/dto"
	staffMocks "frontdesk/internal/domains/staff/mocks"
	staffDto "frontdesk/internal/domains/staff/model/dto"
	billHandler "frontdesk/internal/handlers/bill"
	bookingHandler "frontdesk/internal/handlers/booking"
	customerHandler "frontdesk/internal/handlers/customer"
	roomHandler "frontdesk/internal/handlers/room"
	staffHandler "frontdesk/internal/handlers/staff"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	transport "frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type server struct {
	handler  http.Handler
	rooms    *roomMocks.MockRoomService
	bookings *bookingMocks.MockBookingService
	customer *customerMocks.MockCustomerService
	staff    *staffMocks.MockStaffService
	bills    *billMocks.MockBillService
}

func newServer(t *testing.T, cfg *config.Config, store cache.Cache) server {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := otelMocks.NewOtel()

	s := server{
		rooms:    roomMocks.NewMockRoomService(ctrl),
		bookings: bookingMocks.NewMockBookingService(ctrl),
		customer: customerMocks.NewMockCustomerService(ctrl),
		staff:    staffMocks.NewMockStaffService(ctrl),
		bills:    billMocks.NewMockBillService(ctrl),
	}

	routes := router.New(router.DomainHandlers{
		Room:     roomHandler.New(s.rooms, s.bookings, ot),
		Booking:  bookingHandler.New(s.bookings, ot),
		Customer: customerHandler.New(s.customer, ot),
		Staff:    staffHandler.New(s.staff, ot),
		Bill:     billHandler.New(s.bills, ot),
	})

	s.handler = transport.New(cfg, routes, middleware.NewAppMiddleware(ot, cfg, store), ot).Handler()

	return s
}

func do(s server, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()

	s.handler.ServeHTTP(recorder, request)

	return recorder
}

func TestHealthAndRequestID(t *testing.T) {
	s := newServer(t, &config.Config{}, cache.NewNoopCache())

	res := do(s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.NotEmpty(t, res.Header().Get(constant.RequestHeaderRequestID))

	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	request.Header.Set(constant.RequestHeaderRequestID, "req-42")

	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, request)
	assert.Equal(t, "req-42", recorder.Header().Get(constant.RequestHeaderRequestID))
}

func TestBookingRoutes(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(s server)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "create booking",
			method: http.MethodPost,
			target: "/v1/bookings",
			body:   `{"room_id":"101","customer_name":"Bob","check_in":"01-01-2027","check_out":"03-01-2027"}`,
			setupMock: func(s server) {
				s.bookings.EXPECT().CreateBooking(gomock.Any(), bookingDto.CreateBookingRequest{
					RoomID: "101", CustomerName: "Bob", CheckIn: "01-01-2027", CheckOut: "03-01-2027",
				}).Return(bookingDto.BookingResponse{ID: "B0001", RoomID: "101"}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"booking_id":"B0001"`,
		},
		{
			name:      "create booking with a bad date",
			method:    http.MethodPost,
			target:    "/v1/bookings",
			body:      `{"room_id":"101","customer_name":"Bob","check_in":"2027-01-01","check_out":"03-01-2027"}`,
			setupMock: func(s server) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "room already booked",
			method: http.MethodPost,
			target: "/v1/bookings",
			body:   `{"room_id":"101","customer_name":"Carol","check_in":"01-01-2027","check_out":"03-01-2027"}`,
			setupMock: func(s server) {
				s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(bookingDto.BookingResponse{}, failure.RoomNotAvailable("101"))
			},
			wantCode: http.StatusConflict,
			wantBody: `"kind":"room_not_available"`,
		},
		{
			name:   "cancel unknown booking",
			method: http.MethodDelete,
			target: "/v1/bookings/B0404",
			setupMock: func(s server) {
				s.bookings.EXPECT().CancelBooking(gomock.Any(), "B0404").Return(bookingDto.CancelBookingResponse{}, failure.BookingNotFound("B0404"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `"kind":"booking_not_found"`,
		},
		{
			name:   "reconcile",
			method: http.MethodPost,
			target: "/v1/bookings/reconcile",
			setupMock: func(s server) {
				s.bookings.EXPECT().Reconcile(gomock.Any()).Return(bookingDto.ReconcileReport{Freed: []string{"102"}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"102"`,
		},
		{
			name:   "available rooms",
			method: http.MethodGet,
			target: "/v1/rooms/available",
			setupMock: func(s server) {
				s.bookings.EXPECT().ListAvailableRooms(gomock.Any()).Return([]roomDto.RoomResponse{{ID: "101"}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"room_id":"101"`,
		},
		{
			name:   "available rooms of a type",
			method: http.MethodGet,
			target: "/v1/rooms/available?type=suite",
			setupMock: func(s server) {
				s.rooms.EXPECT().SearchAvailableByType(gomock.Any(), "suite").Return([]roomDto.RoomResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t, &config.Config{}, cache.NewNoopCache())
			tt.setupMock(s)

			res := do(s, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, res.Code, res.Body.String())
			assert.Contains(t, res.Body.String(), tt.wantBody)
		})
	}
}

func TestDeskRoutes(t *testing.T) {
	s := newServer(t, &config.Config{}, cache.NewNoopCache())

	s.customer.EXPECT().Search(gomock.Any(), "alice").Return([]customerDto.CustomerResponse{{ID: "C0001"}}, nil)
	s.staff.EXPECT().SearchByRole(gomock.Any(), "chef").Return([]staffDto.StaffResponse{{ID: "S001"}}, nil)
	s.bills.EXPECT().Generate(gomock.Any(), billDto.GenerateBillRequest{Key: "C0001"}).Return(billDto.BillResponse{ID: "BL0001"}, nil)
	s.rooms.EXPECT().Delete(gomock.Any(), "101").Return(failure.Conflict("room 101 has an active booking"))

	res := do(s, http.MethodGet, "/v1/customers?q=alice", "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "C0001")

	res = do(s, http.MethodGet, "/v1/staff?role=chef", "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "S001")

	res = do(s, http.MethodPost, "/v1/bills", `{"key":"C0001"}`)
	assert.Equal(t, http.StatusCreated, res.Code)

	res = do(s, http.MethodDelete, "/v1/rooms/101", "")
	assert.Equal(t, http.StatusConflict, res.Code)

	var payload struct {
		Error string `json:"error"`
	}

	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.Equal(t, "room 101 has an active booking", payload.Error)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	store := cacheMocks.NewMockCache(gomock.NewController(t))
	s := newServer(t, cfg, store)

	store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*int) = 2

			return nil
		})

	res := do(s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusTooManyRequests, res.Code)

	store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)

	res = do(s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "1", res.Header().Get(constant.RequestHeaderRateLimitRemaining))
}
