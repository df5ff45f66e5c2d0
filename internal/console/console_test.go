package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/console"
	billMocks "frontdesk/internal/domains/bill/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	customerDto "frontdesk/internal/domains/customer/model/dto"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomDto "frontdesk/internal/domains/room/model/dto"
	staffMocks "frontdesk/internal/domains/staff/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type desk struct {
	rooms     *roomMocks.MockRoomService
	bookings  *bookingMocks.MockBookingService
	customers *customerMocks.MockCustomerService
	staff     *staffMocks.MockStaffService
	bills     *billMocks.MockBillService
}

func newDesk(t *testing.T) desk {
	t.Helper()

	ctrl := gomock.NewController(t)

	return desk{
		rooms:     roomMocks.NewMockRoomService(ctrl),
		bookings:  bookingMocks.NewMockBookingService(ctrl),
		customers: customerMocks.NewMockCustomerService(ctrl),
		staff:     staffMocks.NewMockStaffService(ctrl),
		bills:     billMocks.NewMockBillService(ctrl),
	}
}

func (d desk) run(t *testing.T, input ...string) string {
	t.Helper()

	var out bytes.Buffer

	c := console.New(strings.NewReader(strings.Join(input, "\n")+"\n"), &out, console.Services{
		Room:     d.rooms,
		Booking:  d.bookings,
		Customer: d.customers,
		Staff:    d.staff,
		Bill:     d.bills,
	}, otelMocks.NewOtel())

	require.NoError(t, c.Run(context.Background()))

	return out.String()
}

func TestConsole(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		setupMock func(d desk)
		want      []string
	}{
		{
			name:  "receptionist books a room",
			input: []string{"2", "1", "Bob", "101", "01-01-2027", "03-01-2027", "0", "0"},
			setupMock: func(d desk) {
				d.bookings.EXPECT().CreateBooking(gomock.Any(), bookingDto.CreateBookingRequest{
					CustomerName: "Bob", RoomID: "101", CheckIn: "01-01-2027", CheckOut: "03-01-2027",
				}).Return(bookingDto.BookingResponse{ID: "B0001", CustomerName: "Bob", RoomID: "101"}, nil)
			},
			want: []string{"Booking B0001 confirmed for room 101."},
		},
		{
			name:  "a refused booking is reported and the menu carries on",
			input: []string{"2", "1", "Carol", "101", "01-01-2027", "03-01-2027", "3", "0", "0"},
			setupMock: func(d desk) {
				d.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(bookingDto.BookingResponse{}, failure.RoomNotAvailable("101"))
				d.bookings.EXPECT().ListAvailableRooms(gomock.Any()).Return(nil, nil)
			},
			want: []string{"Error: room 101 is not available", "No records found."},
		},
		{
			name:  "receptionist cancels a booking",
			input: []string{"2", "2", "B0001", "0", "0"},
			setupMock: func(d desk) {
				d.bookings.EXPECT().CancelBooking(gomock.Any(), "B0001").
					Return(bookingDto.CancelBookingResponse{BookingID: "B0001", RoomID: "101"}, nil)
			},
			want: []string{"Booking B0001 cancelled, room 101 released."},
		},
		{
			name:  "manager lists rooms as a table",
			input: []string{"1", "4", "0", "0"},
			setupMock: func(d desk) {
				d.rooms.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gDto.FilterGroup{}).
					Return(roomDto.GetRoomsResponse{Rooms: []roomDto.RoomResponse{
						{ID: "101", Type: "Single", Price: "1000", Status: "Available"},
					}}, nil)
			},
			want: []string{"RoomID", "Single", "1000"},
		},
		{
			name:  "manager reconciles clean tables",
			input: []string{"1", "10", "0", "0"},
			setupMock: func(d desk) {
				d.bookings.EXPECT().Reconcile(gomock.Any()).Return(bookingDto.ReconcileReport{}, nil)
			},
			want: []string{"Rooms and bookings agree."},
		},
		{
			name:  "customer days that are not a number become zero",
			input: []string{"2", "5", "Dina", "0812345678", "dina@example.com", "101", "a week", "0", "0"},
			setupMock: func(d desk) {
				d.customers.EXPECT().Create(gomock.Any(), customerDto.CreateCustomerRequest{
					Name: "Dina", Phone: "0812345678", Email: "dina@example.com", RoomID: "101", DaysOfStay: 0,
				}).Return(customerDto.CustomerResponse{ID: "C0001"}, nil)
			},
			want: []string{"Customer C0001 registered."},
		},
		{
			name:  "guest searches rooms by type",
			input: []string{"3", "2", "suite", "0", "0"},
			setupMock: func(d desk) {
				d.rooms.EXPECT().SearchAvailableByType(gomock.Any(), "suite").
					Return([]roomDto.RoomResponse{{ID: "301", Type: "Suite", Price: "4000", Status: "Available"}}, nil)
			},
			want: []string{"301", "Suite"},
		},
		{
			name:      "unknown choice",
			input:     []string{"9", "0"},
			setupMock: func(d desk) {},
			want:      []string{"Invalid choice."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDesk(t)
			tt.setupMock(d)

			out := d.run(t, tt.input...)

			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestConsole_EndOfInputExits(t *testing.T) {
	d := newDesk(t)

	out := d.run(t, "2", "1", "Bob")

	assert.Contains(t, out, "Room ID: ")
}
