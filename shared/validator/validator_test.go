package validator_test

import (
	"errors"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	RoomID  string `json:"room_id"  validate:"required"`
	Name    string `json:"name"     validate:"required,max=20"`
	CheckIn string `json:"check_in" validate:"required,ddmmyyyy"`
	Price   string `json:"price"    validate:"omitempty,decimal"`
	Phone   string `json:"phone"    validate:"omitempty,phone"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    stayRequest
		wantErr string
	}{
		{
			name: "valid request",
			data: stayRequest{RoomID: "R1", Name: "Bob", CheckIn: "01-01-2025", Price: "1000.50", Phone: "+919876543210"},
		},
		{
			name:    "missing room",
			data:    stayRequest{Name: "Bob", CheckIn: "01-01-2025"},
			wantErr: "RoomID is required",
		},
		{
			name:    "iso date rejected",
			data:    stayRequest{RoomID: "R1", Name: "Bob", CheckIn: "2025-01-01"},
			wantErr: "CheckIn must be a date in dd-mm-yyyy format",
		},
		{
			name:    "impossible date rejected",
			data:    stayRequest{RoomID: "R1", Name: "Bob", CheckIn: "31-02-2025"},
			wantErr: "CheckIn must be a date in dd-mm-yyyy format",
		},
		{
			name:    "negative price rejected",
			data:    stayRequest{RoomID: "R1", Name: "Bob", CheckIn: "01-01-2025", Price: "-1"},
			wantErr: "Price must be a non-negative decimal",
		},
		{
			name:    "text price rejected",
			data:    stayRequest{RoomID: "R1", Name: "Bob", CheckIn: "01-01-2025", Price: "cheap"},
			wantErr: "Price must be a non-negative decimal",
		},
		{
			name:    "short phone rejected",
			data:    stayRequest{RoomID: "R1", Name: "Bob", CheckIn: "01-01-2025", Phone: "123"},
			wantErr: "Phone must be a phone number of 7 to 15 digits",
		},
		{
			name:    "long name rejected",
			data:    stayRequest{RoomID: "R1", Name: strings.Repeat("x", 21), CheckIn: "01-01-2025"},
			wantErr: "Name must be at most 20 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.True(t, errors.Is(err, failure.ErrInvalidInput))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		req := stayRequest{}
		body := `{"room_id":"R1","name":"Bob","check_in":"01-01-2025"}`

		require.NoError(t, validator.Validate(strings.NewReader(body), &req))
		assert.Equal(t, "R1", req.RoomID)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := stayRequest{}

		err := validator.Validate(strings.NewReader(`{"room_id":`), &req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, failure.ErrInvalidInput))
		assert.Contains(t, err.Error(), "failed to decode request body")
	})
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid email", field: "guest@example.com", tag: "email", expectError: false},
		{name: "invalid email", field: "guest-at-example", tag: "email", expectError: true},
		{name: "valid decimal", field: "0", tag: "decimal", expectError: false},
		{name: "empty passes empty", field: "", tag: "empty", expectError: false},
		{name: "value fails empty", field: "x", tag: "empty", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
