/*
Package rbtree offers an ordered, self-balancing binary search tree.

Red-Black Trees

A red-black tree keeps its nodes ordered by a client-supplied comparison and
guarantees O(log n) insertion, lookup and deletion. Every node carries a color;
after each structural change a fixup pass rotates and recolors nodes until the
following properties hold again:

  1. The root is black.
  2. Every absent child counts as black.
  3. A red node never has a red child.
  4. Every path from a node down to an absent child passes the same number
     of black nodes (the node's black-height).
  5. Left subtrees hold strictly smaller values, right subtrees values which
     are not smaller.

From Wikipedia:
These constraints enforce a critical property of red–black trees: the path from
the root to the farthest leaf is no more than twice as long as the path from the
root to the nearest leaf. The result is that the tree is height-balanced.

Storage

Nodes live in an arena and are addressed by small integer indices. Index 0 is
reserved as the sentinel for “no node” and is always black. Clients refer to
nodes through a Handle, which stays valid until the node it designates is
removed. Using a handle after that is a programming error and will panic.

Trees are not safe for concurrent use. Clients which share a tree between
goroutines have to synchronize access themselves.

Equal values

The tree does not suppress duplicates. Values comparing equal (neither is less
than the other) are stored in insertion order. Containers needing unique keys
call Search before Insert.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2022, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
