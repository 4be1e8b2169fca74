/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package section

import (
	"fmt"

	"bennypowers.dev/brandtokens/buildctx"
	"bennypowers.dev/brandtokens/internal/logger"
	"bennypowers.dev/brandtokens/token"
)

// Relevant returns the sections a context includes, in merge order.
//
//   - Primitives: Primitives/Default
//   - Responsive: Primitives/Default, then every Responsive section in document order
//   - Brand B: Primitives/Default, Alias colours/B, Mapped/B
func Relevant(doc *Document, ctx buildctx.Context) []ID {
	ids := []ID{PrimitivesDefault}
	switch ctx.Kind {
	case buildctx.Responsive:
		for _, s := range doc.Sections {
			if s.ID.Layer == LayerResponsive {
				ids = append(ids, s.ID)
			}
		}
	case buildctx.Brand:
		ids = append(ids,
			ID{Layer: LayerAliasColours, Qualifier: ctx.Brand},
			ID{Layer: LayerMapped, Qualifier: ctx.Brand},
		)
	}
	return ids
}

// Select deep-merges the sections relevant to ctx into a new tree.
// Section keys are discarded; later sections overwrite earlier leaves.
// Missing sections are skipped. A selected section that is not an object
// yields a MalformedInputError.
func Select(doc *Document, ctx buildctx.Context) (*token.Node, error) {
	merged := token.NewObject()
	if err := selectInto(merged, doc, ctx); err != nil {
		return nil, err
	}
	return merged, nil
}

// SelectAll selects from each document in turn and merges the results in
// the given order.
func SelectAll(docs []*Document, ctx buildctx.Context) (*token.Node, error) {
	merged := token.NewObject()
	for _, doc := range docs {
		if err := selectInto(merged, doc, ctx); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

func selectInto(merged *token.Node, doc *Document, ctx buildctx.Context) error {
	for _, id := range Relevant(doc, ctx) {
		s, ok := doc.Get(id)
		if !ok {
			logger.Debug("[%s] section %s not found in %s, skipping", ctx, id, doc.Source)
			continue
		}
		if !s.Tree.IsObject() {
			return &MalformedInputError{
				Source:  doc.Source,
				Section: id.String(),
				Err:     fmt.Errorf("section value is %T, want object", s.Tree.Value()),
			}
		}
		logger.Debug("[%s] including section %s", ctx, id)
		merged.Merge(s.Tree)
	}
	return nil
}
