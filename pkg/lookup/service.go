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
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrNoAccount is returned when an EBS account has no linked account name
	ErrNoAccount = errors.New("no account found")
	// ErrRejected is returned when the operator does not confirm the account names
	ErrRejected = errors.New("account verification rejected")
)

// Result is the outcome of an account lookup
type Result struct {
	EBSAccount   string    `json:"ebsAccount" yaml:"ebsAccount"`
	AccountNames []string  `json:"accountNames" yaml:"accountNames"`
	ClusterIDs   []string  `json:"clusterIds" yaml:"clusterIds"`
	UpdatedAt    time.Time `json:"updatedAt" yaml:"updatedAt"`
	Offline      bool      `json:"offline" yaml:"offline"`
}

// WriteText prints the cluster list the way operators read it
func (r Result) WriteText(w io.Writer) error {
	if r.Offline {
		fmt.Fprintf(w, "Cached result from %s\n", r.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	if len(r.ClusterIDs) == 0 {
		_, err := fmt.Fprintf(w, "No clusters found for EBS account: %s\n", r.EBSAccount)
		return err
	}
	fmt.Fprintf(w, "\nFound %d cluster(s):\n", len(r.ClusterIDs))
	for _, id := range r.ClusterIDs {
		if _, err := fmt.Fprintf(w, "  - %s\n", id); err != nil {
			return err
		}
	}
	return nil
}

// Confirmer asks the operator whether the linked account names are the expected ones
type Confirmer func(ebsAccount string, accountNames []string) (bool, error)

// Service combines the pool, the queries and the optional cache
type Service struct {
	manager *Manager
	repo    *Repository
	cache   *Cache
	now     func() time.Time
}

// NewService returns a lookup service, cache may be nil
func NewService(manager *Manager, repo *Repository, cache *Cache) *Service {
	return &Service{manager: manager, repo: repo, cache: cache, now: time.Now}
}

// Lookup verifies the account names of ebsAccount with confirm and lists its clusters
func (s *Service) Lookup(ctx context.Context, ebsAccount string, confirm Confirmer) (Result, error) {
	result := Result{EBSAccount: ebsAccount}
	conn, err := s.manager.Acquire(ctx)
	if err != nil {
		return result, err
	}
	defer s.manager.Release(conn)

	names, err := s.repo.AccountNames(ctx, conn, ebsAccount)
	if err != nil {
		return result, err
	}
	if len(names) == 0 {
		return result, fmt.Errorf("%w for EBS account number: %s", ErrNoAccount, ebsAccount)
	}
	result.AccountNames = names
	ok, err := confirm(ebsAccount, names)
	if err != nil {
		return result, err
	}
	if !ok {
		return result, ErrRejected
	}
	log.Info("Account verified successfully")

	if result.ClusterIDs, err = s.repo.ClusterIDs(ctx, conn, ebsAccount); err != nil {
		return result, err
	}
	if len(result.ClusterIDs) == 0 {
		log.Warnf("No clusters found for EBS account: %s", ebsAccount)
	}
	result.UpdatedAt = s.now()
	if s.cache != nil {
		if err := s.cache.Store(ctx, result); err != nil {
			log.Warnf("Unable to cache lookup result: %v", err)
		}
	}
	return result, nil
}

// AccountList joins account names for display
func AccountList(names []string) string {
	return strings.Join(names, ", ")
}
