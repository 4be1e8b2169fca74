/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
	"github.com/iancoleman/strcase"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/brandtokens/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Name        string   // CSS variable name
	Type        string   // Token type or "-"
	Value       string   // Resolved value
	Description string   // Token description
	RefChain    []string // Resolution chain as CSS variable names
	IsColor     bool     // Whether Value is a parseable color
	Path        []string // Token path in the merged tree
}

// ComputeRows transforms resolved tokens into display rows, in token order.
func ComputeRows(tokens []*token.Token) []Row {
	names := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		names[tok.DotPath()] = tok.CSSVariableName()
	}

	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		row := Row{
			Name:        tok.CSSVariableName(),
			Type:        tok.Type,
			Value:       tok.Value,
			Description: tok.Description,
			Path:        tok.Path,
		}
		if row.Type == "" {
			row.Type = "-"
		}

		if len(tok.ResolutionChain) > 0 {
			row.RefChain = make([]string, len(tok.ResolutionChain))
			for i, path := range tok.ResolutionChain {
				row.RefChain[i] = names[path]
			}
		}

		if tok.Type == token.TypeColor && len(tok.Unresolved) == 0 {
			if _, err := csscolorparser.Parse(row.Value); err == nil {
				row.IsColor = true
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, typ, val int) {
	name, typ, val = 4, 4, 5 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		typ = max(typ, len(r.Type))
		val = max(val, len(r.Value))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned table. Color rows get a swatch when
// swatches is set.
func Table(w io.Writer, rows []Row, swatches bool) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, typeW, _ := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if swatches && r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		refChain := ""
		if len(r.RefChain) > 0 {
			refChain = " → " + strings.Join(r.RefChain, " → ")
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value, refChain); err != nil {
			return err
		}
	}
	return nil
}

// Names renders just the token names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// Group is a heading with the rows under it.
type Group struct {
	Name string
	Rows []Row
}

// GroupRows groups rows by the first segment of their path, in order of
// first occurrence.
func GroupRows(rows []Row) []Group {
	groups := linkedhashmap.New[string, []Row]()
	for _, r := range rows {
		key := ""
		if len(r.Path) > 0 {
			key = r.Path[0]
		}
		existing, _ := groups.Get(key)
		groups.Put(key, append(existing, r))
	}

	result := make([]Group, 0, groups.Size())
	it := groups.Iterator()
	for it.Next() {
		result = append(result, Group{Name: it.Key(), Rows: it.Value()})
	}
	return result
}

// Markdown renders rows as markdown tables, one section per top-level group.
func Markdown(w io.Writer, rows []Row) error {
	var sb strings.Builder
	for i, g := range GroupRows(rows) {
		if i > 0 {
			sb.WriteString("\n")
		}
		title := toTitleCase(g.Name)
		if title == "" {
			title = "Ungrouped"
		}
		fmt.Fprintf(&sb, "## %s {#%s}\n\n", title, slugify(title))
		renderTable(&sb, g.Rows)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func renderTable(sb *strings.Builder, rows []Row) {
	nameW, valW, descW, refW := 4, 5, 11, 9 // minimums for headers
	hasDesc, hasRefs := false, false
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		valW = max(valW, len(r.Value))
		if r.Description != "" {
			hasDesc = true
			descW = max(descW, len(r.Description))
		}
		if len(r.RefChain) > 0 {
			hasRefs = true
			refW = max(refW, len(formatRefChain(r.RefChain)))
		}
	}

	header := []string{pad("Name", nameW), pad("Value", valW)}
	rule := []string{strings.Repeat("-", nameW), strings.Repeat("-", valW)}
	if hasDesc {
		header = append(header, pad("Description", descW))
		rule = append(rule, strings.Repeat("-", descW))
	}
	if hasRefs {
		header = append(header, pad("Reference", refW))
		rule = append(rule, strings.Repeat("-", refW))
	}
	writeRow(sb, header)
	fmt.Fprintf(sb, "|-%s-|\n", strings.Join(rule, "-|-"))

	for _, r := range rows {
		cells := []string{pad(r.Name, nameW), pad(r.Value, valW)}
		if hasDesc {
			cells = append(cells, pad(r.Description, descW))
		}
		if hasRefs {
			cells = append(cells, pad(formatRefChain(r.RefChain), refW))
		}
		writeRow(sb, cells)
	}
}

func writeRow(sb *strings.Builder, cells []string) {
	fmt.Fprintf(sb, "| %s |\n", strings.Join(cells, " | "))
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

func formatRefChain(chain []string) string {
	return strings.Join(chain, " → ")
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Alias colours" -> "alias-colours", "BorderRadius" -> "border-radius"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strcase.ToKebab(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(unicode.ToLower(r))
		} else if r == '-' {
			result.WriteRune('-')
		}
	}
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
