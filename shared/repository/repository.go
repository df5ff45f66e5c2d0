package repository

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/logger"
	"reflect"
	"slices"

	"github.com/rs/zerolog/log"
)

var errRequiredFilter = errors.New("required filter")

type column struct {
	name  string
	index int
}

// Repository maps the string fields of T tagged `csv:"Column"` onto one table.
// Every call reads the table afresh; writes rewrite it whole. Callers that
// read-modify-write must hold the store lock.
type Repository[T any] struct {
	store         flatfile.Store
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	Columns       []string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, store flatfile.Store, otl otel.Otel) Repository[T] {
	var zero T

	columns := getColumns(reflect.TypeOf(zero))
	names := make([]string, len(columns))

	for idx, col := range columns {
		names[idx] = col.name
	}

	return Repository[T]{
		store:         store,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		Columns:       names,
	}
}

func (repo *Repository[T]) scopeName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method)
}

// Load returns every row in storage order.
func (repo *Repository[T]) Load(ctx context.Context) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Load"))
	defer scope.End()

	rows, err := repo.store.Load(ctx, repo.table, repo.Columns)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load data (%s): %w", repo.entitas, err)
	}

	models := make([]T, len(rows))
	for idx, row := range rows {
		models[idx] = repo.decode(row)
	}

	return models, nil
}

// Save replaces the whole table with models.
func (repo *Repository[T]) Save(ctx context.Context, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Save"))
	defer scope.End()

	rows := make([][]string, len(models))
	for idx, model := range models {
		rows[idx] = repo.encode(model)
	}

	if err := repo.store.Save(ctx, repo.table, repo.Columns, rows); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to save data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Insert"))
	defer scope.End()

	models, err := repo.Load(ctx)
	if err != nil {
		return err
	}

	return repo.Save(ctx, append(models, model))
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Exist"))
	defer scope.End()

	models, err := repo.Load(ctx)
	if err != nil {
		return false, err
	}

	return len(repo.filter(models, filter)) > 0, nil
}

// Get returns the first matching row, or the zero value when none matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Get"))
	defer scope.End()

	var zero T

	models, err := repo.Load(ctx)
	if err != nil {
		return zero, err
	}

	for _, model := range models {
		if filter.Match(repo.fields(model)) {
			return model, nil
		}
	}

	return zero, nil
}

// GetAll pages through matching rows. An unreadable table is logged and read as empty so
// listings keep working; writers go through Load, which fails instead.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("GetAll"))
	defer scope.End()

	models, err := repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("table", repo.table).Msg("listing an unreadable table as empty")

		return []T{}, nil
	}

	matched := repo.filter(models, filter)
	start, end := params.Bounds(len(matched))

	return matched[start:end], nil
}

// Count is lenient like GetAll; Exist is the strict check for writers.
func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Count"))
	defer scope.End()

	models, err := repo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("table", repo.table).Msg("counting an unreadable table as empty")

		return 0, nil
	}

	return len(repo.filter(models, filter)), nil
}

// Update sets the given columns on every matching row and reports how many changed.
// The table is not written when nothing matches.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]string, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Update"))
	defer scope.End()

	models, err := repo.Load(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0

	for idx, model := range models {
		fields := repo.fields(model)
		if !filter.Match(fields) {
			continue
		}

		for col, value := range mod {
			if _, ok := fields[col]; ok {
				fields[col] = value
			}
		}

		models[idx] = repo.fromFields(fields)
		updated++
	}

	if updated == 0 {
		return 0, nil
	}

	return updated, repo.Save(ctx, models)
}

// Delete removes every matching row and reports how many were removed. An empty
// filter is refused rather than truncating the table.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Delete"))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return 0, errRequiredFilter
	}

	models, err := repo.Load(ctx)
	if err != nil {
		return 0, err
	}

	kept := slices.DeleteFunc(slices.Clone(models), func(model T) bool {
		return filter.Match(repo.fields(model))
	})

	removed := len(models) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	return removed, repo.Save(ctx, kept)
}

func (repo *Repository[T]) filter(models []T, filter dto.FilterGroup) []T {
	matched := make([]T, 0, len(models))

	for _, model := range models {
		if filter.Match(repo.fields(model)) {
			matched = append(matched, model)
		}
	}

	return matched
}

func (repo *Repository[T]) fields(model T) map[string]string {
	value := reflect.ValueOf(model)
	fields := make(map[string]string, len(repo.columns))

	for _, col := range repo.columns {
		fields[col.name] = value.Field(col.index).String()
	}

	return fields
}

func (repo *Repository[T]) fromFields(fields map[string]string) T {
	var model T

	value := reflect.ValueOf(&model).Elem()
	for _, col := range repo.columns {
		value.Field(col.index).SetString(fields[col.name])
	}

	return model
}

func (repo *Repository[T]) decode(row []string) T {
	var model T

	value := reflect.ValueOf(&model).Elem()
	for idx, col := range repo.columns {
		value.Field(col.index).SetString(row[idx])
	}

	return model
}

func (repo *Repository[T]) encode(model T) []string {
	value := reflect.ValueOf(model)
	row := make([]string, len(repo.columns))

	for idx, col := range repo.columns {
		row[idx] = value.Field(col.index).String()
	}

	return row
}

func getColumns(reflectType reflect.Type) []column {
	columns := []column{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		csvTag := field.Tag.Get("csv")
		if csvTag == "" || csvTag == "-" || field.Type.Kind() != reflect.String {
			continue
		}

		columns = append(columns, column{name: csvTag, index: i})
	}

	return columns
}
