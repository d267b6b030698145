// Package xpgx wires squirrel builders to pgx pools and transactions.
package xpgx

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrTooManyRows = errors.New("xpgx: more than one row in result set")

// Conn is satisfied by *pgxpool.Pool and pgx.Tx.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Pool runs squirrel queries on a Conn and scans rows into structs by db tags.
type Pool struct {
	conn Conn
}

func NewPool(conn Conn) *Pool {
	return &Pool{conn: conn}
}

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}
	return pool, nil
}

func (p *Pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("ToSql: %w", err)
	}
	return p.conn.Exec(ctx, sql, args...)
}

// Getx scans exactly one row into dst, a pointer to struct. No rows yields pgx.ErrNoRows.
func (p *Pool) Getx(ctx context.Context, dst any, query sq.Sqlizer) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("xpgx: Getx destination must be a pointer to struct, got %T", dst)
	}

	rows, err := p.query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}
	if err = scanStruct(rows, v.Elem()); err != nil {
		return err
	}
	if rows.Next() {
		return ErrTooManyRows
	}

	return rows.Err()
}

// Selectx scans all rows into dst, a pointer to []T or []*T.
func (p *Pool) Selectx(ctx context.Context, dst any, query sq.Sqlizer) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("xpgx: Selectx destination must be a pointer to slice, got %T", dst)
	}

	sliceType := v.Elem().Type()
	elemType := sliceType.Elem()
	byPointer := elemType.Kind() == reflect.Pointer
	structType := elemType
	if byPointer {
		structType = elemType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return fmt.Errorf("xpgx: Selectx element must be a struct, got %s", elemType)
	}

	rows, err := p.query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	res := reflect.MakeSlice(sliceType, 0, 0)
	for rows.Next() {
		item := reflect.New(structType)
		if err = scanStruct(rows, item.Elem()); err != nil {
			return err
		}
		if byPointer {
			res = reflect.Append(res, item)
		} else {
			res = reflect.Append(res, item.Elem())
		}
	}
	if err = rows.Err(); err != nil {
		return err
	}

	v.Elem().Set(res)
	return nil
}

// InTx runs fn in a transaction; fn's error rolls it back. Inside a transaction
// it opens a savepoint.
func (p *Pool) InTx(ctx context.Context, fn func(tx *Pool) error) error {
	return pgx.BeginFunc(ctx, p.conn, func(tx pgx.Tx) error {
		return fn(NewPool(tx))
	})
}

func (p *Pool) query(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}
	return p.conn.Query(ctx, sql, args...)
}
