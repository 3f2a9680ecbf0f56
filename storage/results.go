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

package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"

	"github.com/adrian-a27/collapse.go/puzzle"
)

/*

solution cache

Solved grids are cached under a fingerprint of the starting
summary, so re-solving a known puzzle is a cache hit.  Entries
are JSON-encoded summaries with a TTL; the cache is advisory and
losing it costs nothing but a re-solve.

*/

// how long cached solutions live
const solutionTTL = 24 * time.Hour

// Fingerprint returns the cache key material for a summary: a
// hex digest over the side length and the row-major values.
func Fingerprint(s *puzzle.Summary) string {
	bytes, _ := json.Marshal(s)
	sum := sha256.Sum256(bytes)
	return hex.EncodeToString(sum[:16])
}

// solutionKey - returns the cache key for a summary
func solutionKey(s *puzzle.Summary) string {
	return "solution:" + Fingerprint(s)
}

// CacheSolution stores the solved summary for a starting summary.
func CacheSolution(start, solved *puzzle.Summary) error {
	bytes, err := json.Marshal(solved)
	if err != nil {
		return fmt.Errorf("Couldn't encode solution for cache: %v", err)
	}
	return rdExecute(func(conn redis.Conn) error {
		_, err := conn.Do("SET", solutionKey(start), bytes,
			"EX", int(solutionTTL.Seconds()))
		return err
	})
}

// CachedSolution returns the cached solved summary for a starting
// summary, or nil if there is none.
func CachedSolution(start *puzzle.Summary) (*puzzle.Summary, error) {
	var bytes []byte
	err := rdExecute(func(conn redis.Conn) error {
		var err error
		bytes, err = redis.Bytes(conn.Do("GET", solutionKey(start)))
		if err == redis.ErrNil {
			bytes = nil
			return nil
		}
		return err
	})
	if err != nil || bytes == nil {
		return nil, err
	}
	var solved puzzle.Summary
	if err := json.Unmarshal(bytes, &solved); err != nil {
		return nil, fmt.Errorf("Couldn't decode cached solution: %v", err)
	}
	return &solved, nil
}

/*

solve log

*/

// A SolveRecord is one row of the solve log: which puzzle was
// solved, how it ended, and how much work it took.
type SolveRecord struct {
	Fingerprint string        `json:"fingerprint"`
	SideLength  int           `json:"sidelen"`
	Outcome     string        `json:"outcome"`
	Steps       int           `json:"steps"`
	Backtracks  int           `json:"backtracks"`
	Elapsed     time.Duration `json:"elapsed"`
	SolvedAt    time.Time     `json:"solvedAt"`
}

// RecordSolve appends one record to the solve log.
func RecordSolve(rec *SolveRecord) error {
	return pgExecute(func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO solves
				(fingerprint, sidelen, outcome, steps, backtracks, elapsed_ms)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rec.Fingerprint, rec.SideLength, rec.Outcome,
			rec.Steps, rec.Backtracks, rec.Elapsed.Milliseconds())
		return err
	})
}

// RecentSolves returns the most recent solve-log records, newest
// first.
func RecentSolves(limit int) ([]*SolveRecord, error) {
	var recs []*SolveRecord
	err := pgExecute(func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT fingerprint, sidelen, outcome, steps, backtracks, elapsed_ms, solved_at
			FROM solves ORDER BY solved_at DESC LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var rec SolveRecord
			var ms int64
			if err := rows.Scan(&rec.Fingerprint, &rec.SideLength, &rec.Outcome,
				&rec.Steps, &rec.Backtracks, &ms, &rec.SolvedAt); err != nil {
				return err
			}
			rec.Elapsed = time.Duration(ms) * time.Millisecond
			recs = append(recs, &rec)
		}
		return rows.Err()
	})
	return recs, err
}
