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

package util_test

import (
	"testing"

	"github.com/ocp-visualizer/ocp-visualizer/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summary struct {
	Name   string `json:"clusterName"`
	Failed bool   `json:"failed"`
}

func TestQuery(t *testing.T) {
	data := []summary{{"prod-east", false}, {"lab", true}, {"edge", true}}

	got, err := util.Query(data, `[.[] | select(.failed) | .clusterName]`)
	require.NoError(t, err)
	assert.Equal(t, []any{"lab", "edge"}, got)

	got, err = util.Query(data, `.[] | .clusterName`)
	require.NoError(t, err)
	assert.Equal(t, []any{"prod-east", "lab", "edge"}, got)

	got, err = util.Query(data, `length`)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = util.Query(data, `.[`)
	assert.Error(t, err)

	_, err = util.Query(data, `.[0] | error("boom")`)
	assert.ErrorContains(t, err, "boom")
}
