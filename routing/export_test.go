// SPDX-License-Identifier: MIT

package routing_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/routing"
)

func TestExtractPath(t *testing.T) {
	assert.Equal(t, []string{"a"}, routing.ExtractPath("a", nil))
	assert.Equal(t, []string{"a", "b", "c"}, routing.ExtractPath("a", []string{"b", "c"}))
}

func TestWritePathJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, routing.WritePathJSON(&buf, routing.PathDocument{
		WaypointTags: []string{"x=1"},
		Path:         []string{"0,0", "1,0"},
	}))

	var got map[string][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"x=1"}, got["waypointTags"])
	assert.Equal(t, []string{"0,0", "1,0"}, got["path"])
}

func TestWritePathJSON_EmptySlices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, routing.WritePathJSON(&buf, routing.PathDocument{}))
	assert.JSONEq(t, `{"waypointTags":[],"path":[]}`, buf.String())
}
