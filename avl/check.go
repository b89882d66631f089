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

package avl

import (
	"fmt"

	"github.com/pkg/errors"
)

// Violation names the invariant that a tree failed
type Violation string

const (
	ViolationOrder   Violation = "order"
	ViolationHeight  Violation = "height"
	ViolationBalance Violation = "balance"
	ViolationCount   Violation = "count"
)

// InvariantError describes the first broken invariant found by Verify.
type InvariantError struct {
	Violation Violation
	Key       int
	Detail    string
}

func (e *InvariantError) Error() string {
	if e.Violation == ViolationCount {
		return fmt.Sprintf("%s invariant: %s", e.Violation, e.Detail)
	}
	return fmt.Sprintf("%s invariant at key %d: %s", e.Violation, e.Key, e.Detail)
}

// Verify walks the whole tree and checks key ordering, stored heights, the
// balance of every node and the node count. It returns nil for a valid tree.
// A non-nil result means the tree was corrupted by a bug.
func (tree *Tree) Verify() error {
	n, _, err := verify(tree.root, nil, nil)
	if err != nil {
		return errors.Wrap(err, "verify")
	}
	if n != tree.count {
		return errors.WithStack(&InvariantError{
			Violation: ViolationCount,
			Detail:    fmt.Sprintf("size is %d but %d nodes are reachable", tree.count, n),
		})
	}
	return nil
}

// verify returns the number of nodes and the computed height of the subtree.
// lo and hi are exclusive bounds inherited from the ancestors.
func verify(node *Node, lo *int, hi *int) (int, int, error) {
	if node == nil {
		return 0, -1, nil
	}
	if lo != nil && node.key <= *lo {
		return 0, 0, &InvariantError{
			Violation: ViolationOrder,
			Key:       node.key,
			Detail:    fmt.Sprintf("expected key > %d", *lo),
		}
	}
	if hi != nil && node.key >= *hi {
		return 0, 0, &InvariantError{
			Violation: ViolationOrder,
			Key:       node.key,
			Detail:    fmt.Sprintf("expected key < %d", *hi),
		}
	}

	nl, hl, err := verify(node.left, lo, &node.key)
	if err != nil {
		return 0, 0, err
	}
	nr, hr, err := verify(node.right, &node.key, hi)
	if err != nil {
		return 0, 0, err
	}

	h := 1 + max(hl, hr)
	if node.height != h {
		return 0, 0, &InvariantError{
			Violation: ViolationHeight,
			Key:       node.key,
			Detail:    fmt.Sprintf("stored height %d, computed %d", node.height, h),
		}
	}
	if bf := hl - hr; bf < -1 || bf > 1 {
		return 0, 0, &InvariantError{
			Violation: ViolationBalance,
			Key:       node.key,
			Detail:    fmt.Sprintf("balance factor %d", bf),
		}
	}
	return 1 + nl + nr, h, nil
}
