package dto

import (
	"fmt"
	"frontdesk/shared/constant"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq     = "eq"
	FilterOperatorEqFold = "eq_fold"
	FilterOperatorLike   = "like"
	FilterOperatorIn     = "in"
	FilterOperatorNotEq  = "not_eq"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter matches one column of a table row. A Field of "*" matches when any column does.
type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq eq_fold like in not_eq"`
}

func (f *Filter) Match(row map[string]string) bool {
	if f.Field == constant.Asterix {
		for column := range row {
			single := Filter{Field: column, Value: f.Value, Operator: f.Operator}
			if single.Match(row) {
				return true
			}
		}

		return false
	}

	cell := row[f.Field]

	switch f.Operator {
	case FilterOperatorEq:
		return cell == valueString(f.Value)
	case FilterOperatorEqFold:
		return strings.EqualFold(strings.TrimSpace(cell), strings.TrimSpace(valueString(f.Value)))
	case FilterOperatorLike:
		return strings.Contains(strings.ToLower(cell), strings.ToLower(valueString(f.Value)))
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if val.Kind() != reflect.Array && val.Kind() != reflect.Slice {
			return cell == valueString(f.Value)
		}

		for idx := range val.Len() {
			if cell == valueString(val.Index(idx).Interface()) {
				return true
			}
		}

		return false
	case FilterOperatorNotEq:
		return cell != valueString(f.Value)
	default:
		return false
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// Match reports whether row satisfies the group. An empty group matches every row.
func (f *FilterGroup) Match(row map[string]string) bool {
	if len(f.Filters) == 0 {
		return true
	}

	anyOf := strings.EqualFold(f.Operator, FilterGroupOperatorOr)

	for _, filter := range f.Filters {
		var matched bool

		switch fill := filter.(type) {
		case Filter:
			matched = fill.Match(row)
		case FilterGroup:
			matched = fill.Match(row)
		default:
			continue
		}

		if anyOf && matched {
			return true
		}

		if !anyOf && !matched {
			return false
		}
	}

	return !anyOf
}

func valueString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
