package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the model's exported fields, mapping
// columns from the `db` struct tags. Fields tagged "-" or with no tag are
// skipped. An optional suffix is appended verbatim after the values clause.
func InsertModel(table string, model any, suffix ...string) (string, []any, error) {
	columns, values, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	builder := InsertInto(table).Columns(columns...).Values(values...)
	if len(suffix) > 0 {
		builder = builder.Suffix(strings.Join(suffix, " "))
	}
	return builder.ToSQL()
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, fmt.Errorf("insert model is nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("insert model must be a struct, got %s", v.Kind())
	}

	t := v.Type()
	columns := make([]string, 0, t.NumField())
	values := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		column := field.Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}
		columns = append(columns, column)
		values = append(values, v.Field(i).Interface())
	}

	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("insert model has no db-tagged fields")
	}
	return columns, values, nil
}
