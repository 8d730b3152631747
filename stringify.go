// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package pcol

import (
	"fmt"
	"strings"

	"github.com/halfling/pcol/internal/stringify"
)

// renderer is implemented by every container so that one nested
// container holding another renders through a single shared cycle
// guard instead of each String() call starting its own.
type renderer interface {
	renderInto(v *stringifyVisitor, b *strings.Builder)
	// selfLabel is written in place of a container reachable from
	// itself, e.g. "(this map)", per spec section 6's toString row.
	selfLabel() string
}

type stringifyVisitor = stringify.Visitor

func stringifyNew() *stringifyVisitor {
	return stringify.New()
}

func writeElem(b *strings.Builder, e any) {
	writeElemVisited(stringifyNew(), b, e)
}

func writeElemVisited(v *stringifyVisitor, b *strings.Builder, e any) {
	if r, ok := e.(renderer); ok {
		if !v.Enter(r) {
			b.WriteString(r.selfLabel())
			return
		}
		r.renderInto(v, b)
		v.Leave(r)
		return
	}
	fmt.Fprint(b, e)
}
