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
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheHelpPageAndGetHelpPage(t *testing.T) {
	c := NewOptimizedHelpCache()
	key := "# insert"
	helpText := "rendered help for insert"

	// Initially, GetHelpPage should return an empty string for a missing page.
	if got := GetHelpPage(c, key); got != "" {
		t.Errorf("GetHelpPage(%q) = %q; want empty string", key, got)
	}

	CacheHelpPage(c, key, helpText)

	if got := GetHelpPage(c, key); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", key, got, helpText)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "expiring page"
	helpText := "This help text should expire soon."

	c.Set(key, helpText, 100*time.Millisecond)

	if got := GetHelpPage(c, key); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", key, got, helpText)
	}

	time.Sleep(150 * time.Millisecond)

	if got := GetHelpPage(c, key); got != "" {
		t.Errorf("After expiration, GetHelpPage(%q) = %q; want empty string", key, got)
	}
}

func TestGetOrfillCache(t *testing.T) {
	c := NewOptimizedHelpCache()
	md := "# Commands\n\n* `size` - Show the number of keys\n"

	first := GetOrfillCache(c, md)
	if !strings.Contains(first, "size") {
		t.Errorf("rendered page %q does not mention the command", first)
	}
	if got := GetHelpPage(c, md); got != first {
		t.Errorf("expected the rendered page to be cached")
	}

	// A cached page is returned as is
	CacheHelpPage(c, md, "stale")
	if got := GetOrfillCache(c, md); got != "stale" {
		t.Errorf("GetOrfillCache returned %q; want cached value", got)
	}
}
