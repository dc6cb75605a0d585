// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"ycsbgo/pkg/ycsb"
)

// Postgres schema (reference):
//
// CREATE TABLE IF NOT EXISTS ycsb_records (
//   table_name TEXT NOT NULL,
//   record_key TEXT NOT NULL,
//   field_name TEXT NOT NULL,
//   field_value BYTEA NOT NULL,
//   PRIMARY KEY (table_name, record_key, field_name)
// );
// CREATE INDEX IF NOT EXISTS idx_ycsb_records_scan ON ycsb_records(table_name, record_key);

// Postgres is a record-store backend over a single database/sql handle,
// using pgx/v5's stdlib driver. Each field of a record is one row;
// Insert/Update upsert every field in one statement per field via
// ON CONFLICT DO UPDATE, the idempotent-write idiom this is grounded on.
type Postgres struct {
	dsn string
	db  *sql.DB
}

// NewPostgres defers connecting until Init.
func NewPostgres(dsn string) *Postgres {
	return &Postgres{dsn: dsn}
}

func (p *Postgres) Init(ctx context.Context) error {
	db, err := sql.Open("pgx", p.dsn)
	if err != nil {
		return fmt.Errorf("store: opening postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("store: pinging postgres: %w", err)
	}
	p.db = db
	return nil
}

func (p *Postgres) Cleanup(ctx context.Context) error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

func (p *Postgres) Read(ctx context.Context, table, key string, fields []string) (ycsb.Status, []ycsb.Field, error) {
	var rows *sql.Rows
	var err error
	if len(fields) == 0 {
		rows, err = p.db.QueryContext(ctx,
			`SELECT field_name, field_value FROM ycsb_records WHERE table_name=$1 AND record_key=$2`, table, key)
	} else {
		rows, err = p.db.QueryContext(ctx,
			`SELECT field_name, field_value FROM ycsb_records WHERE table_name=$1 AND record_key=$2 AND field_name = ANY($3)`,
			table, key, fields)
	}
	if err != nil {
		return ycsb.StatusError, nil, err
	}
	defer rows.Close()

	var out []ycsb.Field
	for rows.Next() {
		var name string
		var value []byte
		if err := rows.Scan(&name, &value); err != nil {
			return ycsb.StatusError, nil, err
		}
		out = append(out, ycsb.Field{Name: name, Value: value})
	}
	if len(out) == 0 {
		return ycsb.StatusNotFound, nil, nil
	}
	return ycsb.StatusOK, out, nil
}

func (p *Postgres) Scan(ctx context.Context, table, startKey string, count int, fields []string) (ycsb.Status, [][]ycsb.Field, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT record_key, field_name, field_value FROM ycsb_records
		   WHERE table_name=$1 AND record_key >= $2
		   ORDER BY record_key, field_name`, table, startKey)
	if err != nil {
		return ycsb.StatusError, nil, err
	}
	defer rows.Close()

	var out [][]ycsb.Field
	var curKey string
	var cur []ycsb.Field
	for rows.Next() {
		var key, name string
		var value []byte
		if err := rows.Scan(&key, &name, &value); err != nil {
			return ycsb.StatusError, nil, err
		}
		if key != curKey {
			if cur != nil {
				out = append(out, cur)
				if len(out) >= count {
					return ycsb.StatusOK, out, nil
				}
			}
			curKey = key
			cur = nil
		}
		cur = append(cur, ycsb.Field{Name: name, Value: value})
	}
	if cur != nil && len(out) < count {
		out = append(out, cur)
	}
	return ycsb.StatusOK, out, nil
}

func (p *Postgres) Update(ctx context.Context, table, key string, values []ycsb.Field) (ycsb.Status, error) {
	return p.upsert(ctx, table, key, values, true)
}

func (p *Postgres) Insert(ctx context.Context, table, key string, values []ycsb.Field) (ycsb.Status, error) {
	return p.upsert(ctx, table, key, values, false)
}

func (p *Postgres) upsert(ctx context.Context, table, key string, values []ycsb.Field, requireExisting bool) (ycsb.Status, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return ycsb.StatusError, err
	}
	defer tx.Rollback()

	if requireExisting {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM ycsb_records WHERE table_name=$1 AND record_key=$2)`,
			table, key).Scan(&exists); err != nil {
			return ycsb.StatusError, err
		}
		if !exists {
			return ycsb.StatusNotFound, nil
		}
	}

	for _, v := range values {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ycsb_records(table_name, record_key, field_name, field_value)
			   VALUES ($1,$2,$3,$4)
			   ON CONFLICT (table_name, record_key, field_name) DO UPDATE SET field_value = EXCLUDED.field_value`,
			table, key, v.Name, v.Value); err != nil {
			return ycsb.StatusError, fmt.Errorf("store: upserting %s/%s/%s: %w", table, key, v.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return ycsb.StatusError, err
	}
	return ycsb.StatusOK, nil
}

func (p *Postgres) Delete(ctx context.Context, table, key string) (ycsb.Status, error) {
	res, err := p.db.ExecContext(ctx, `DELETE FROM ycsb_records WHERE table_name=$1 AND record_key=$2`, table, key)
	if err != nil {
		return ycsb.StatusError, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ycsb.StatusError, err
	}
	if n == 0 {
		return ycsb.StatusNotFound, nil
	}
	return ycsb.StatusOK, nil
}
