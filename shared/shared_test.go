package shared_test

import (
	"context"
	"errors"
	"frontdesk/shared"
	"frontdesk/shared/cache/mocks"
	"frontdesk/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "remainder rounds up", total: 101, limit: 10, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestAtoiOrZero(t *testing.T) {
	assert.Equal(t, 3, shared.AtoiOrZero("3"))
	assert.Equal(t, 12, shared.AtoiOrZero(" 12 "))
	assert.Equal(t, 0, shared.AtoiOrZero("three"))
	assert.Equal(t, 0, shared.AtoiOrZero(""))
	assert.Equal(t, 0, shared.AtoiOrZero("-4"))
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Type    string `csv:"RoomType"`
		Price   string `csv:"Price"`
		Note    string
		Skipped string `csv:"-"`
		Count   int    `csv:"Count"`
	}

	tests := []struct {
		name     string
		data     updateRequest
		expected map[string]string
	}{
		{
			name:     "populated fields",
			data:     updateRequest{Type: "Suite", Price: "4500", Note: "x", Skipped: "y", Count: 3},
			expected: map[string]string{"RoomType": "Suite", "Price": "4500"},
		},
		{
			name:     "blank fields keep old values",
			data:     updateRequest{Type: "   ", Price: "4500"},
			expected: map[string]string{"Price": "4500"},
		},
		{
			name:     "nothing to update",
			data:     updateRequest{},
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.TransformFields(tt.data))
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("R1", "RoomID")

	assert.True(t, filter.Match(map[string]string{"RoomID": "R1"}))
	assert.False(t, filter.Match(map[string]string{"RoomID": "R10"}))
	assert.Equal(t, dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "RoomID", Value: "R1", Operator: dto.FilterOperatorEq},
	}}, filter)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:R1", shared.BuildCacheKey("room:get", "R1"))
	assert.Equal(t, "room:gets:2:5:[]", shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 2, Limit: 5}, dto.FilterGroup{}))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "room:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "room:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "room:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "room:count")
}
