package util

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/uptrace/bun"

	pagingUtil "backend/gestion-platform/app/pkg/util/paging"
)

type DBTable interface {
	Alias() string
}

// StructToQueries turns the mapstructure-tagged fields of a filter into
// column conditions. Keys are sorted so the generated SQL is stable.
func StructToQueries(input any, alias string) (conds []string, args []any, err error) {
	output := make(map[string]any)
	if err = mapstructure.Decode(input, &output); err != nil {
		return nil, nil, err
	}
	if alias != "" {
		alias += "."
	}

	keys := make([]string, 0, len(output))
	for key := range output {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := output[key]
		v := reflect.ValueOf(value)
		if v.Kind() == reflect.Array || v.Kind() == reflect.Slice {
			conds = append(conds, alias+key+" IN (?)")
			args = append(args, bun.In(value))
		} else {
			conds = append(conds, alias+key+" = ?")
			args = append(args, value)
		}
	}

	return conds, args, nil
}

func StructToConditions(input any, alias string) (condition string, args []any, err error) {
	conds, args, err := StructToQueries(input, alias)
	if err != nil {
		return "", nil, err
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), args, nil
}

// ApplyFilter adds the filter conditions to query, qualified with the entity alias.
func ApplyFilter[E DBTable, F any](query *bun.SelectQuery, filter F) (*bun.SelectQuery, error) {
	var e E
	condition, args, err := StructToConditions(filter, e.Alias())
	if err != nil {
		return nil, fmt.Errorf("build filter conditions: %w", err)
	}
	if condition != "" {
		query = query.Where(condition, args...)
	}
	return query, nil
}

// ScanList scans query into dest. When paging is nil the full result set is
// returned, otherwise limit/offset are applied and the total is counted.
func ScanList[E any](
	ctx context.Context,
	query *bun.SelectQuery,
	dest *[]E,
	paging *pagingUtil.Page,
) (int, error) {
	if paging == nil {
		if err := query.Scan(ctx); err != nil {
			return 0, SkipNotFound(err)
		}
		return len(*dest), nil
	}

	paging.LoadDefault()
	total, err := query.Offset(paging.Offset).Limit(paging.Limit).ScanAndCount(ctx)
	if err != nil {
		return 0, SkipNotFound(err)
	}
	return total, nil
}

func CheckExist[E any, F any](
	ctx context.Context,
	db bun.IDB,
	filter F,
) (bool, error) {
	condition, args, err := StructToConditions(filter, "")
	if err != nil {
		return false, err
	}
	if condition == "" {
		return false, fmt.Errorf("check exist requires at least one condition")
	}

	return db.NewSelect().Model((*E)(nil)).Where(condition, args...).Exists(ctx)
}
