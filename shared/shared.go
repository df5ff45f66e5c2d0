package shared

import (
	"context"
	"fmt"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// AtoiOrZero reads a whole number the way the desk always has: anything that is not
// plain digits counts as zero.
func AtoiOrZero(value string) int {
	number, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || number < 0 {
		return 0
	}

	return number
}

// TransformFields converts the non-blank string fields of an update request into a
// column -> value map, keyed by the `csv` tag. Blank fields keep their stored value.
func TransformFields(data any) map[string]string {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]string)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.Kind() != reflect.String {
			continue
		}

		value := strings.TrimSpace(field.String())
		if value == constant.Empty {
			continue
		}

		column := typ.Field(index).Tag.Get("csv")
		if column == constant.Empty || column == "-" {
			continue
		}

		updatedFields[column] = value
	}

	return updatedFields
}

func FilterByID(id, fieldID string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	return BuildCacheKey(prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		fmt.Sprintf("%v", filter.Filters),
	)
}

// InvalidateCaches drops every cached entry under prefix.
func InvalidateCaches(ctx context.Context, store cache.Cache, prefix string) {
	if err := store.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// Operator names whoever is working the desk for this request, or "unknown".
func Operator(ctx context.Context) string {
	if operator, ok := ctx.Value(constant.ContextKeyOperator).(string); ok && operator != constant.Empty {
		return operator
	}

	return "unknown"
}
