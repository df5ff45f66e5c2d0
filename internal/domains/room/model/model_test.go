package model_test

import (
	"testing"

	"frontdesk/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		name     string
		roomType string
		want     string
	}{
		{name: "lower case", roomType: "suite", want: "Suite"},
		{name: "upper case", roomType: "DOUBLE", want: "Double"},
		{name: "surrounding spaces", roomType: "  single ", want: "Single"},
		{name: "accented first letter", roomType: "étage", want: "Étage"},
		{name: "umlaut first letter", roomType: "ümit", want: "Ümit"},
		{name: "single multibyte letter", roomType: "é", want: "É"},
		{name: "blank", roomType: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NormalizeType(tt.roomType))
		})
	}
}
