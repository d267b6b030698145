package xpgx

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
)

// column name -> field index path, per struct type
var fieldIndexCache sync.Map

func fieldIndex(t reflect.Type) map[string][]int {
	if cached, ok := fieldIndexCache.Load(t); ok {
		return cached.(map[string][]int)
	}

	idx := make(map[string][]int)
	collectFields(t, nil, idx)
	fieldIndexCache.Store(t, idx)
	return idx
}

// collectFields walks embedded structs so their columns map onto the outer row.
func collectFields(t reflect.Type, parent []int, idx map[string][]int) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		path := append(append([]int(nil), parent...), i)

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectFields(f.Type, path, idx)
			continue
		}
		if !f.IsExported() {
			continue
		}

		name := f.Tag.Get("db")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		idx[name] = path
	}
}

func scanStruct(rows pgx.Rows, dst reflect.Value) error {
	idx := fieldIndex(dst.Type())
	fields := rows.FieldDescriptions()

	targets := make([]any, len(fields))
	for i, fd := range fields {
		path, ok := idx[fd.Name]
		if !ok {
			return fmt.Errorf("xpgx: column %q has no field in %s", fd.Name, dst.Type())
		}
		targets[i] = dst.FieldByIndex(path).Addr().Interface()
	}

	return rows.Scan(targets...)
}
