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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFilter(t *testing.T) {
	filter := NewKeyFilter(1<<12, 4)

	keys := []int{-7, 0, 1, 42, 1 << 40}
	for _, key := range keys {
		filter.Add(key)
	}

	for _, key := range keys {
		assert.True(t, filter.MayContain(key), "added key %d must test positive", key)
	}
	assert.Equal(t, uint(len(keys)), filter.Added())
	assert.Equal(t, uint(1<<12), filter.Bits())
	assert.Equal(t, uint(4), filter.Hashes())

	// with 5 keys in 4096 bits false positives are rare
	positives := 0
	for key := 1000; key < 2000; key++ {
		if filter.MayContain(key) {
			positives++
		}
	}
	assert.Less(t, positives, 10)
}
