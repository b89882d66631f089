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
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered help pages are kept for 30 minutes
	helpCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	helpCacheCleanup = 5 * time.Minute

	helpWidth  = 80
	helpIndent = 3
)

func NewOptimizedHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

func CacheHelpPage(c *cache.Cache, key string, helpTxt string) {
	c.Set(key, helpTxt, helpCacheExpiration)
}

func GetHelpPage(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// renderMarkdown formats markdown for a plain terminal
func renderMarkdown(md string) string {
	return string(markdown.Render(md, helpWidth, helpIndent))
}

// GetOrfillCache returns the rendered form of md, rendering and caching it
// on a miss. The markdown text itself is the cache key.
func GetOrfillCache(c *cache.Cache, md string) string {
	if page := GetHelpPage(c, md); page != "" {
		return page
	}
	page := renderMarkdown(md)
	CacheHelpPage(c, md, page)
	return page
}

// helpRenderer adapts the cache to shell.Session.RenderHelp
func helpRenderer(c *cache.Cache) func(string) string {
	return func(md string) string {
		return GetOrfillCache(c, md)
	}
}
