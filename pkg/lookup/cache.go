// Copyright 2025 The ocp-visualizer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lookup

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

const cacheSchema = `CREATE TABLE IF NOT EXISTS lookups (
	ebs_account   TEXT PRIMARY KEY,
	account_names TEXT NOT NULL,
	cluster_ids   TEXT NOT NULL,
	updated_at    TEXT NOT NULL
)`

// Cache keeps the last lookup result of every EBS account in a SQLite file
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the cache database at path
func OpenCache(ctx context.Context, path string) (*Cache, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.ExecContext(ctx, cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache %s: %w", path, err)
	}
	log.Debugf("Lookup cache ready at %s", path)
	return &Cache{db: db}, nil
}

// Store saves a result, replacing the previous one of the same account
func (c *Cache) Store(ctx context.Context, r Result) error {
	names, err := json.Marshal(r.AccountNames)
	if err != nil {
		return err
	}
	ids, err := json.Marshal(r.ClusterIDs)
	if err != nil {
		return err
	}
	_, err = c.db.ExecContext(ctx, `INSERT INTO lookups (ebs_account, account_names, cluster_ids, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(ebs_account) DO UPDATE SET
			account_names = excluded.account_names,
			cluster_ids = excluded.cluster_ids,
			updated_at = excluded.updated_at`,
		r.EBSAccount, string(names), string(ids), r.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storing lookup of %s: %w", r.EBSAccount, err)
	}
	return nil
}

// Load returns the cached result of an account, false when there is none
func (c *Cache) Load(ctx context.Context, ebsAccount string) (Result, bool, error) {
	var names, ids, updated string
	err := c.db.QueryRowContext(ctx,
		"SELECT account_names, cluster_ids, updated_at FROM lookups WHERE ebs_account = ?", ebsAccount,
	).Scan(&names, &ids, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, fmt.Errorf("loading lookup of %s: %w", ebsAccount, err)
	}
	r := Result{EBSAccount: ebsAccount, Offline: true}
	if err := json.Unmarshal([]byte(names), &r.AccountNames); err != nil {
		return Result{}, false, err
	}
	if err := json.Unmarshal([]byte(ids), &r.ClusterIDs); err != nil {
		return Result{}, false, err
	}
	if r.UpdatedAt, err = time.Parse(time.RFC3339, updated); err != nil {
		return Result{}, false, err
	}
	return r, true, nil
}

// Close closes the database
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
