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

// Package avl implements a height-balanced binary search tree over int keys.
//
// Every node records the height of its subtree (a leaf is 0, an empty subtree
// is -1) and the tree is rebalanced with single or double rotations on the way
// back up from every insert and delete, so the heights of the two children of
// any node never differ by more than one.
//
// Nodes carry no parent pointer. Insert and delete recurse down the tree and
// rebind each child link to whatever subtree root the recursive call returns.
//
// Note: a tree is not safe for concurrent use. Either access it from a single
// goroutine or guard it with a mutex.
package avl
