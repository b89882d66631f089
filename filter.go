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
	"encoding/binary"

	"github.com/willf/bloom"
)

// KeyFilter is a bloom filter over int keys. A negative answer is certain,
// a positive one only means the key may be present. Keys cannot be removed.
type KeyFilter struct {
	filter *bloom.BloomFilter
	added  uint
}

func NewKeyFilter(bits, hashes uint) *KeyFilter {
	return &KeyFilter{filter: bloom.New(bits, hashes)}
}

func keyBytes(key int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key))
	return buf[:]
}

func (f *KeyFilter) Add(key int) {
	f.filter.Add(keyBytes(key))
	f.added++
}

func (f *KeyFilter) MayContain(key int) bool {
	return f.filter.Test(keyBytes(key))
}

// Added returns how many keys were added, duplicates included
func (f *KeyFilter) Added() uint {
	return f.added
}

func (f *KeyFilter) Bits() uint {
	return f.filter.Cap()
}

func (f *KeyFilter) Hashes() uint {
	return f.filter.K()
}
