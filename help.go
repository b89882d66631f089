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
	"fmt"
	"runtime"

	"github.com/cybrota/avltree/shell"
)

func getUsageMarkdown() string {
	return fmt.Sprintf(`
 **AVL Tree %s**

A self-balancing binary search tree over integer keys, with an interactive
explorer, a command shell and a benchmark.

Built with Go %s

# 1. Commands
* **avltree run**: interactive explorer (default when no command is given)
* **avltree shell**: read commands from the terminal
* **avltree exec SCRIPT...**: run command scripts, use - for stdin
* **avltree bench**: randomized workload with invariant checks and metrics
* **avltree settings**: show the configuration, creating it when missing
* **avltree version**: print the version

# 2. Tree
* Heights count edges, an empty tree has height -1 and a leaf height 0
* Balance factor is height(left) - height(right), always within -1..1
* Duplicate inserts are ignored

%s
# Configuration
Settings are read from ~/.avltree.yaml, or the file named by AVLTREE_CONFIG.

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), shell.Overview(shell.NewRegistry()))
}

func getHelpMessage() string {
	return renderMarkdown(getUsageMarkdown())
}
