/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"fmt"

	"bennypowers.dev/brandtokens/brand"
	"bennypowers.dev/brandtokens/buildctx"
	"bennypowers.dev/brandtokens/formatter"
	"bennypowers.dev/brandtokens/formatter/css"
	"bennypowers.dev/brandtokens/internal/logger"
	"bennypowers.dev/brandtokens/parser"
	"bennypowers.dev/brandtokens/partition"
	"bennypowers.dev/brandtokens/resolver"
	"bennypowers.dev/brandtokens/schema"
	"bennypowers.dev/brandtokens/section"
	"bennypowers.dev/brandtokens/token"
	"bennypowers.dev/brandtokens/transform"
)

// Source is one token document handed to the build.
type Source struct {
	// Path names the document in logs and errors.
	Path string
	Data []byte
}

// CompileOptions configures the stages of a single pass.
type CompileOptions struct {
	// Registry lists the brands. Nil uses brand.Default().
	Registry *brand.Registry

	// Rewriter normalizes references. Nil uses the default vocabularies.
	Rewriter *resolver.Rewriter

	// Format forces the leaf spelling. Unknown detects it per document.
	Format schema.Format
}

func (o CompileOptions) registry() *brand.Registry {
	if o.Registry == nil {
		return brand.Default()
	}
	return o.Registry
}

func (o CompileOptions) rewriter() *resolver.Rewriter {
	if o.Rewriter == nil {
		return resolver.NewRewriter(nil, nil)
	}
	return o.Rewriter
}

// Compiled is the resolved, partitioned token set of one context.
type Compiled struct {
	Context buildctx.Context

	// Tokens holds every token of the merged tree in tree order.
	Tokens []*token.Token

	// Outputs holds the planned files with their tokens.
	Outputs []partition.Output

	// Resolution holds the reference index and unresolved references.
	Resolution *resolver.Result

	registry *brand.Registry
}

// Compile runs the pass stages for ctx up to partitioning: parse every
// source, select and merge the relevant sections in source order,
// rewrite references, extract and name tokens, then resolve them.
func Compile(sources []Source, ctx buildctx.Context, opts CompileOptions) (*Compiled, error) {
	docs := make([]*section.Document, 0, len(sources))
	for _, src := range sources {
		doc, err := parser.ParseDocument(src.Data, src.Path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return CompileDocuments(docs, ctx, opts)
}

// CompileDocuments is Compile over already parsed documents.
func CompileDocuments(docs []*section.Document, ctx buildctx.Context, opts CompileOptions) (*Compiled, error) {
	registry := opts.registry()
	rewriter := opts.rewriter()

	tree, err := section.SelectAll(docs, ctx)
	if err != nil {
		return nil, err
	}
	rewriter.Rewrite(tree)

	format := opts.Format
	if format == schema.Unknown && len(docs) > 0 {
		format = docs[0].Format
	}

	tokens := parser.Extract(tree, format)
	for _, t := range tokens {
		t.Name = transform.FlattenName(t.Path, registry)
	}

	result, err := resolver.Resolve(tokens, resolver.Options{Rewriter: rewriter})
	if err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return &Compiled{
		Context:    ctx,
		Tokens:     tokens,
		Outputs:    partition.Assign(tokens, partition.PlanFor(ctx, registry)),
		Resolution: result,
		registry:   registry,
	}, nil
}

// RefName returns the flat name of the token a reference in from's value
// points at, or the flattened reference when it does not resolve.
func (c *Compiled) RefName(from *token.Token, ref string) string {
	if target, ok := c.Resolution.Index.LookupFrom(from, ref); ok {
		return target.Name
	}
	return transform.FlattenRef(ref, c.registry)
}

// FormatterOptions returns the formatter options for a planned file.
func (c *Compiled) FormatterOptions(f partition.File) formatter.Options {
	return formatter.Options{
		Selector:         f.Selector,
		OutputReferences: f.OutputReferences,
		RefName:          c.RefName,
	}
}

// Render formats one output as a verified stylesheet.
func (c *Compiled) Render(out partition.Output) ([]byte, error) {
	data, err := css.New().Format(out.Tokens, c.FormatterOptions(out.File))
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", out.File.Destination, err)
	}
	if err := css.Verify(data); err != nil {
		return nil, fmt.Errorf("formatting %s: %w", out.File.Destination, err)
	}
	logger.Debug("[%s] rendered %s with %d tokens", c.Context, out.File.Destination, len(out.Tokens))
	return data, nil
}
