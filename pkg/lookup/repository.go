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
	"fmt"
	"regexp"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Repository runs the account queries against the cluster accounts table
type Repository struct {
	accountsQuery string
	clustersQuery string
}

// NewRepository validates the table name and prepares the queries
func NewRepository(table string) (*Repository, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &Repository{
		accountsQuery: fmt.Sprintf("SELECT DISTINCT account_name FROM %s WHERE ebs_account = ? AND account_name IS NOT NULL", table),
		clustersQuery: fmt.Sprintf("SELECT DISTINCT cluster_id FROM %s WHERE ebs_account = ?", table),
	}, nil
}

// AccountNames returns the account names linked to an EBS account
func (r *Repository) AccountNames(ctx context.Context, q Querier, ebsAccount string) ([]string, error) {
	return queryStrings(ctx, q, r.accountsQuery, ebsAccount)
}

// ClusterIDs returns the clusters of an EBS account
func (r *Repository) ClusterIDs(ctx context.Context, q Querier, ebsAccount string) ([]string, error) {
	return queryStrings(ctx, q, r.clustersQuery, ebsAccount)
}

func queryStrings(ctx context.Context, q Querier, query string, args ...any) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if v.Valid {
			out = append(out, v.String)
		}
	}
	return out, rows.Err()
}
