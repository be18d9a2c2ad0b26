package repositories

import (
	"context"
	"errors"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/records/internal/pkg/apperrors"
)

// fakeQuerier records built statements and replays canned results.
type fakeQuerier struct {
	statements []string
	args       [][]interface{}
	row        func(dest ...any) error
	tag        pgconn.CommandTag
	execErr    error
}

func (f *fakeQuerier) record(stmt squirrel.Sqlizer) error {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return err
	}
	f.statements = append(f.statements, sql)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeQuerier) Query(ctx context.Context, stmt squirrel.Sqlizer) (pgx.Rows, error) {
	return nil, errors.New("not supported by fake")
}

func (f *fakeQuerier) QueryRow(ctx context.Context, stmt squirrel.Sqlizer) pgx.Row {
	if err := f.record(stmt); err != nil {
		return scanFunc(func(...any) error { return err })
	}
	return scanFunc(f.row)
}

func (f *fakeQuerier) Exec(ctx context.Context, stmt squirrel.Sqlizer) (pgconn.CommandTag, error) {
	if err := f.record(stmt); err != nil {
		return pgconn.CommandTag{}, err
	}
	return f.tag, f.execErr
}

type scanFunc func(dest ...any) error

func (s scanFunc) Scan(dest ...any) error { return s(dest...) }

// scanValues assigns values to the scan destinations in order.
func scanValues(values ...any) func(dest ...any) error {
	return func(dest ...any) error {
		for i, d := range dest {
			reflect.ValueOf(d).Elem().Set(reflect.ValueOf(values[i]))
		}
		return nil
	}
}

// fakeDocuments is an in-memory lecturer collection.
type fakeDocuments struct {
	lecturers map[string]map[string]interface{}
	err       error
}

func (f *fakeDocuments) FindAll(ctx context.Context, collection string, out interface{}) error {
	if f.err != nil {
		return f.err
	}
	slice := reflect.ValueOf(out).Elem()
	for id, doc := range f.lecturers {
		item := reflect.New(slice.Type().Elem()).Elem()
		item.FieldByName("ID").SetString(id)
		item.FieldByName("Name").SetString(doc["name"].(string))
		slice.Set(reflect.Append(slice, item))
	}
	return nil
}

func (f *fakeDocuments) FindByID(ctx context.Context, collection, id string, out interface{}) error {
	if f.err != nil {
		return f.err
	}
	doc, ok := f.lecturers[id]
	if !ok {
		return apperrors.NewResourceNotFoundError("document not found")
	}
	v := reflect.ValueOf(out).Elem()
	v.FieldByName("ID").SetString(id)
	v.FieldByName("Name").SetString(doc["name"].(string))
	return nil
}

func (f *fakeDocuments) InsertOne(ctx context.Context, collection string, doc interface{}) error {
	if f.err != nil {
		return f.err
	}
	v := reflect.ValueOf(doc).Elem()
	id := v.FieldByName("ID").String()
	if _, ok := f.lecturers[id]; ok {
		return apperrors.NewDuplicateKeyError("document already exists")
	}
	f.lecturers[id] = map[string]interface{}{"name": v.FieldByName("Name").String()}
	return nil
}

func (f *fakeDocuments) DeleteOne(ctx context.Context, collection, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.lecturers[id]; !ok {
		return 0, nil
	}
	delete(f.lecturers, id)
	return 1, nil
}
