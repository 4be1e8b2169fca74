/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks brand token documents for structural problems
// and for references that would not resolve in some build context.
package validator

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/brandtokens/brand"
	"bennypowers.dev/brandtokens/build"
	"bennypowers.dev/brandtokens/buildctx"
	"bennypowers.dev/brandtokens/parser"
	"bennypowers.dev/brandtokens/resolver"
	"bennypowers.dev/brandtokens/section"
	"bennypowers.dev/brandtokens/token"
)

// Severity ranks a validation finding.
type Severity int

const (
	// SeverityError marks input the build rejects or silently loses.
	SeverityError Severity = iota

	// SeverityWarning marks input the build tolerates.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ValidationError represents one validation finding.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Context is the build context the finding applies to, if any.
	Context string
	// Path is the dotted path to the problematic element.
	Path string
	// Line is the 1-based source line, or 0 when unknown.
	Line int
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
	// Severity ranks the finding.
	Severity Severity
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		if e.Line > 0 {
			fmt.Fprintf(&sb, ":%d", e.Line)
		}
		sb.WriteString(": ")
	}
	if e.Context != "" {
		fmt.Fprintf(&sb, "[%s] ", e.Context)
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// HasErrors reports whether any finding is an error, or any finding at
// all when strict is set.
func HasErrors(findings []ValidationError, strict bool) bool {
	for _, f := range findings {
		if strict || f.Severity == SeverityError {
			return true
		}
	}
	return false
}

var (
	valueKeys = []string{"value", "$value"}
	typeKeys  = []string{"type", "$type"}
)

// ValidateDocument checks the structure of one token document:
//   - the content parses and its root is an object
//   - no object repeats a key
//   - top-level keys are section identifiers of known layers
//   - Alias colours and Mapped sections name registered brands
//   - Primitives sections are qualified Default
//   - sections are objects and hold well-formed tokens
//
// A nil registry uses brand.Default().
func ValidateDocument(content []byte, filePath string, registry *brand.Registry) []ValidationError {
	if registry == nil {
		registry = brand.Default()
	}

	if _, err := parser.ParseTree(content); err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}

	root, err := decode(content)
	if err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}
	if root.Kind != yaml.MappingNode {
		return []ValidationError{{
			FilePath:   filePath,
			Line:       root.Line,
			Message:    "document root must be an object",
			Suggestion: `use an object keyed by "<Layer>/<Qualifier>"`,
		}}
	}

	v := &validation{filePath: filePath, registry: registry}
	v.checkDuplicates(root, nil)

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		key := keyNode.Value
		if strings.HasPrefix(key, "$") {
			continue
		}

		id, err := section.Parse(key)
		if err != nil {
			v.checkUnknownKey(key, keyNode.Line)
			continue
		}
		if valueNode.Kind != yaml.MappingNode {
			v.add(ValidationError{
				Path:    key,
				Line:    valueNode.Line,
				Message: "section must be an object",
			})
			continue
		}
		v.checkQualifier(id, keyNode.Line)
		v.checkGroup(valueNode, []string{key}, "")
	}

	return v.findings
}

type validation struct {
	filePath string
	registry *brand.Registry
	findings []ValidationError
}

func (v *validation) add(e ValidationError) {
	e.FilePath = v.filePath
	v.findings = append(v.findings, e)
}

func (v *validation) checkDuplicates(n *yaml.Node, path []string) {
	switch n.Kind {
	case yaml.MappingNode:
		seen := make(map[string]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			childPath := append(path[:len(path):len(path)], key.Value)
			if line, ok := seen[key.Value]; ok {
				v.add(ValidationError{
					Path:       strings.Join(childPath, "."),
					Line:       key.Line,
					Message:    fmt.Sprintf("duplicate key %q (first defined on line %d)", key.Value, line),
					Suggestion: "the later value replaces the earlier one; remove one of them",
				})
			} else {
				seen[key.Value] = key.Line
			}
			v.checkDuplicates(n.Content[i+1], childPath)
		}
	case yaml.SequenceNode:
		for _, item := range n.Content {
			v.checkDuplicates(item, path)
		}
	}
}

func (v *validation) checkUnknownKey(key string, line int) {
	layer, _, ok := strings.Cut(key, "/")
	if ok && !section.Layer(layer).Known() {
		v.add(ValidationError{
			Path:       key,
			Line:       line,
			Message:    fmt.Sprintf("unknown layer %q, section is ignored", layer),
			Suggestion: "use one of " + layerNames(),
			Severity:   SeverityWarning,
		})
		return
	}
	v.add(ValidationError{
		Path:       key,
		Line:       line,
		Message:    "top-level key is not a section identifier and is ignored",
		Suggestion: `use "<Layer>/<Qualifier>" or prefix metadata keys with "$"`,
		Severity:   SeverityWarning,
	})
}

func (v *validation) checkQualifier(id section.ID, line int) {
	switch id.Layer {
	case section.LayerPrimitives:
		if id.Qualifier != section.DefaultQualifier {
			v.add(ValidationError{
				Path:       id.String(),
				Line:       line,
				Message:    "primitive sections other than Primitives/Default are never selected",
				Suggestion: "move these tokens under Primitives/Default",
				Severity:   SeverityWarning,
			})
		}
	case section.LayerAliasColours, section.LayerMapped:
		if !v.registry.Contains(id.Qualifier) {
			v.add(ValidationError{
				Path:       id.String(),
				Line:       line,
				Message:    fmt.Sprintf("brand %q is not registered, section is never selected", id.Qualifier),
				Suggestion: fmt.Sprintf("add %q to brands, registered brands are %s", id.Qualifier, strings.Join(v.registry.IDs(), ", ")),
				Severity:   SeverityWarning,
			})
		}
	}
}

// checkGroup walks a group object, checking every token below it.
// Group types are inherited by descendants.
func (v *validation) checkGroup(n *yaml.Node, path []string, inheritedType string) {
	if typ := lookup(n, typeKeys); typ != nil && typ.Kind == yaml.ScalarNode {
		inheritedType = typ.Value
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, child := n.Content[i], n.Content[i+1]
		key := keyNode.Value
		if strings.HasPrefix(key, "$") || key == "type" || key == "description" {
			continue
		}
		childPath := append(path[:len(path):len(path)], key)

		if child.Kind != yaml.MappingNode {
			v.add(ValidationError{
				Path:       strings.Join(childPath, "."),
				Line:       child.Line,
				Message:    "value outside a token object is ignored",
				Suggestion: fmt.Sprintf(`wrap it as {"value": %s}`, scalarText(child)),
				Severity:   SeverityWarning,
			})
			continue
		}

		if valueNode := lookup(child, valueKeys); valueNode != nil {
			v.checkToken(child, valueNode, childPath, inheritedType)
			continue
		}
		if lookup(child, typeKeys) != nil && !hasGroupChildren(child) {
			v.add(ValidationError{
				Path:       strings.Join(childPath, "."),
				Line:       child.Line,
				Message:    "token has a type but no value",
				Suggestion: `add a "value" key`,
			})
			continue
		}
		v.checkGroup(child, childPath, inheritedType)
	}
}

func (v *validation) checkToken(tok, valueNode *yaml.Node, path []string, inheritedType string) {
	dotted := strings.Join(path, ".")
	typ := inheritedType
	if t := lookup(tok, typeKeys); t != nil {
		typ = t.Value
	}
	switch valueNode.Kind {
	case yaml.MappingNode:
		if typ != token.TypeColor {
			v.add(ValidationError{
				Path:       dotted,
				Line:       valueNode.Line,
				Message:    "composite value is not emitted",
				Suggestion: "split it into one token per property",
				Severity:   SeverityWarning,
			})
		}
	case yaml.SequenceNode:
		for _, item := range valueNode.Content {
			if item.Kind != yaml.ScalarNode {
				v.add(ValidationError{
					Path:    dotted,
					Line:    item.Line,
					Message: "array values may only hold strings and numbers",
				})
				return
			}
			v.checkBraces(item, dotted)
		}
	case yaml.ScalarNode:
		v.checkBraces(valueNode, dotted)
	}
}

func (v *validation) checkBraces(n *yaml.Node, path string) {
	if n.Tag != "!!str" {
		return
	}
	if strings.Count(n.Value, "{") != strings.Count(n.Value, "}") {
		v.add(ValidationError{
			Path:       path,
			Line:       n.Line,
			Message:    fmt.Sprintf("unbalanced braces in %q", n.Value),
			Suggestion: "write references as {Group.Token}",
		})
	}
}

// ValidateReferences compiles every build context and reports references
// that do not resolve and reference cycles. Unresolved references are
// warnings, matching the lenient build; cycles and malformed sections
// are errors.
func ValidateReferences(sources []build.Source, opts build.CompileOptions) []ValidationError {
	registry := opts.Registry
	if registry == nil {
		registry = brand.Default()
	}

	var findings []ValidationError
	for _, ctx := range buildctx.Sequence(registry) {
		compiled, err := build.Compile(sources, ctx, opts)
		if err != nil {
			findings = append(findings, compileError(ctx, err))
			continue
		}
		for _, u := range compiled.Resolution.Unresolved {
			findings = append(findings, ValidationError{
				Context:    ctx.String(),
				Path:       u.Token,
				Message:    fmt.Sprintf("reference {%s} does not resolve", u.Ref),
				Suggestion: "check the path, or the brand's sections in this context",
				Severity:   SeverityWarning,
			})
		}
	}
	return findings
}

func compileError(ctx buildctx.Context, err error) ValidationError {
	finding := ValidationError{Context: ctx.String(), Message: err.Error()}

	var malformed *section.MalformedInputError
	var cycle *resolver.CycleError
	switch {
	case errors.As(err, &malformed):
		finding.FilePath = malformed.Source
		finding.Path = malformed.Section
		if malformed.Err != nil {
			finding.Message = malformed.Err.Error()
		}
	case errors.As(err, &cycle):
		finding.Path = cycle.Path[0]
		finding.Suggestion = "break the cycle by pointing one token at a literal value"
	}
	return finding
}

// decode parses content into a yaml.v3 node tree. JSON comments are
// stripped first; yaml.v3 keeps duplicate keys and line numbers.
func decode(content []byte) (*yaml.Node, error) {
	data := content
	if trimmed := bytes.TrimLeft(content, " \t\r\n\xef\xbb\xbf"); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		data = jsonc.ToJSON(content)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0], nil
	}
	return &doc, nil
}

func lookup(n *yaml.Node, keys []string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		for _, k := range keys {
			if n.Content[i].Value == k {
				return n.Content[i+1]
			}
		}
	}
	return nil
}

func hasGroupChildren(n *yaml.Node) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i+1].Kind == yaml.MappingNode && !strings.HasPrefix(n.Content[i].Value, "$") {
			return true
		}
	}
	return false
}

func scalarText(n *yaml.Node) string {
	if n.Kind != yaml.ScalarNode {
		return "..."
	}
	if n.Tag == "!!str" {
		return fmt.Sprintf("%q", n.Value)
	}
	return n.Value
}

func layerNames() string {
	names := make([]string, len(section.Layers))
	for i, l := range section.Layers {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
