package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds a single-row insert from the db tags of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	if strings.TrimSpace(table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}

	marks := make([]string, len(cols))
	for i := range cols {
		marks[i] = placeholder(i + 1)
	}
	query := "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		query += " " + suffix
	}
	return query, vals, nil
}

// Columns lists the db-tagged columns of model in field order, for select lists and COPY.
func Columns(model any) ([]string, error) {
	cols, _, err := columnsAndValuesFromModel(model)
	return cols, err
}

// Values lists the db-tagged field values of model in the same order as Columns.
func Values(model any) ([]any, error) {
	_, vals, err := columnsAndValuesFromModel(model)
	return vals, err
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		col, ok := columnName(field.Tag.Get("db"))
		if !ok {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func columnName(tag string) (string, bool) {
	col := strings.TrimSpace(strings.Split(strings.TrimSpace(tag), ",")[0])
	if col == "" || col == "-" {
		return "", false
	}
	return col, true
}
