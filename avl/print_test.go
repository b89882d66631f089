// Copyright 2025 Naren Yellavula
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

package avl_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrint(t *testing.T) {
	tree := avl.New()
	for _, key := range []int{1, 2, 3, 4} {
		tree.Insert(key)
	}

	var buf bytes.Buffer
	require.NoError(t, tree.Print(&buf))
	assert.Equal(t, "[1, 0, 0]\n[2, 2, -1]\n[3, 1, -1]\n[4, 0, 0]\n", buf.String())
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, avl.New().Print(&buf))
	assert.Empty(t, buf.String())
}

func TestEntryString(t *testing.T) {
	e := avl.Entry{Key: 42, Height: 3, Balance: -1}
	assert.Equal(t, "[42, 3, -1]", e.String())
}

func TestDraw(t *testing.T) {
	tree := avl.New()
	for _, key := range []int{1, 2, 3} {
		tree.Insert(key)
	}

	var buf bytes.Buffer
	require.NoError(t, tree.Draw(&buf))
	expected := "       /------+ 3 h=0 bf=+0\n" +
		"|------+ 2 h=1 bf=+0\n" +
		"       \\------+ 1 h=0 bf=+0\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	require.NoError(t, avl.New().Draw(&buf))
	assert.Equal(t, "(empty)\n", buf.String())
}

func TestPrintWriteError(t *testing.T) {
	tree := avl.New()
	for _, key := range []int{5, 6, 7} {
		tree.Insert(key)
	}
	assert.EqualError(t, tree.Print(failingWriter{}), "disk full")
	assert.EqualError(t, tree.Draw(failingWriter{}), "disk full")
}
