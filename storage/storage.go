// collapse.go - a wavefunction-collapse Sudoku solver and toolkit.
// Copyright (C) 2026 the collapse.go authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

// Package storage caches solved boards in Redis and persists a
// log of solve runs in Postgres.  Both stores are optional: a
// program that never calls Connect simply solves without them.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
)

// Connect opens the cache and database connections, creating the
// database schema if needed.  Returns the identifiers of the two
// stores, for logging.
func Connect() (cacheId, databaseId string, err error) {
	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheId, err = rdConnect()
	if err != nil {
		return
	}

	pgInit()
	databaseId, err = pgConnect()
	if err != nil {
		rdClose()
		return
	}
	err = ensureSchema()
	return
}

// Close shuts both connections down.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose()
	rdClose()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdUrl   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		rdUrl = "redis://localhost:6379/"
	} else {
		rdUrl = url
	}
}

// rdConnect: connect to the given Redis URL.  Returns the
// connection id, if successful, an error otherwise.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		err = fmt.Errorf("Couldn't connect to cache at %q: %v", rdUrl, err)
		return "", err
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose: close the given Redis connection.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: execute the body with the Redis mutex held.
// Because Redis connections can go away without warning, we ping
// first to make sure the connection is alive, and try to
// reconnect if not.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("No cache connection; call Connect first")
	}
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err = rdConnect(); err != nil {
			return fmt.Errorf("Failed to reconnect to cache at %q", rdUrl)
		}
	}
	return body(rdc)
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn *pgx.Conn // open database, if any
	pgUrl  string    // URL for the open connection
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		pgUrl = "postgres://localhost/collapse?sslmode=disable"
	} else {
		pgUrl = url
	}
}

// pgConnect: Open the Postgres database.  Returns any error
// encountered during the open.
func pgConnect() (string, error) {
	conn, err := pgx.Connect(context.Background(), pgUrl)
	if err != nil {
		err = fmt.Errorf("Couldn't connect to db at %q: %v", pgUrl, err)
		return "", err
	}
	pgConn = conn
	return pgUrl, nil
}

// pgClose: close the given Postgres connection.
func pgClose() {
	if pgConn != nil {
		pgConn.Close(context.Background())
		pgConn = nil
	}
}

// pgExecute: execute the body inside a single transaction.  If
// the body errs out, the transaction is rolled back, otherwise
// it's committed.
func pgExecute(body func(ctx context.Context, tx pgx.Tx) error) error {
	if pgConn == nil {
		return fmt.Errorf("No database connection; call Connect first")
	}
	ctx := context.Background()
	tx, err := pgConn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("Can't open a transaction against database: %v", err)
	}
	if err := body(ctx, tx); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

/*

schema

*/

// ensureSchema creates the solve-log table if it's not already
// there.
func ensureSchema() error {
	return pgExecute(func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			CREATE TABLE IF NOT EXISTS solves (
				id          BIGSERIAL PRIMARY KEY,
				fingerprint TEXT        NOT NULL,
				sidelen     INTEGER     NOT NULL,
				outcome     TEXT        NOT NULL,
				steps       INTEGER     NOT NULL,
				backtracks  INTEGER     NOT NULL,
				elapsed_ms  BIGINT      NOT NULL,
				solved_at   TIMESTAMPTZ NOT NULL DEFAULT now()
			)`)
		return err
	})
}
