package dto_test

import (
	"errors"
	"testing"

	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ValidateStay(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{name: "ordered dates", checkIn: "01-03-2026", checkOut: "05-03-2026"},
		{name: "same day stay", checkIn: "01-03-2026", checkOut: "01-03-2026"},
		{name: "across a year", checkIn: "30-12-2026", checkOut: "02-01-2027"},
		{name: "check out before check in", checkIn: "05-03-2026", checkOut: "01-03-2026", wantErr: true},
		{name: "impossible day", checkIn: "31-02-2026", checkOut: "01-03-2026", wantErr: true},
		{name: "iso format rejected", checkIn: "2026-03-01", checkOut: "05-03-2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{RoomID: "101", CustomerName: "Alice", CheckIn: tt.checkIn, CheckOut: tt.checkOut}

			err := req.ValidateStay()
			if tt.wantErr {
				assert.True(t, errors.Is(err, failure.ErrInvalidInput))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCreateBookingRequest_NormalizeAndToModel(t *testing.T) {
	req := dto.CreateBookingRequest{RoomID: " 101 ", CustomerName: " Alice ", CheckIn: "01-03-2026 ", CheckOut: " 02-03-2026"}
	req.Normalize()

	booking := req.ToModel("B0001")

	assert.Equal(t, "B0001", booking.ID)
	assert.Equal(t, "101", booking.RoomID)
	assert.Equal(t, "Alice", booking.CustomerName)
	assert.Equal(t, "01-03-2026", booking.CheckIn)
	assert.Equal(t, "02-03-2026", booking.CheckOut)
}

func TestReconcileReport_State(t *testing.T) {
	clean := dto.ReconcileReport{}
	assert.True(t, clean.Clean())
	assert.False(t, clean.Changed())

	flagged := dto.ReconcileReport{Duplicates: map[string][]string{"101": {"B0001", "B0002"}}}
	assert.False(t, flagged.Clean())
	assert.False(t, flagged.Changed())

	repaired := dto.ReconcileReport{Freed: []string{"102"}}
	assert.True(t, repaired.Changed())
	assert.False(t, repaired.Clean())
}
