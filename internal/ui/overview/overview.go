// Package overview prints a human-readable summary of a parsed ontology.
package overview

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/ui/style"
)

// Render writes the summary of g, published under name, to w.
func Render(w io.Writer, name string, g *domain.Graph) error {
	var b strings.Builder

	b.WriteString(style.Heading.Render(name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", style.Faint.Render("Source:"), g.Source)

	if onts := g.Ontologies(); len(onts) > 0 {
		b.WriteString(style.Faint.Render("Ontologies:"))
		b.WriteString("\n")
		for _, o := range onts {
			fmt.Fprintf(&b, "  %s %s\n", style.Dot, o.IRI)
			if o.Label != "" {
				fmt.Fprintf(&b, "    %s\n", o.Label)
			}
			if o.Comment != "" {
				fmt.Fprintf(&b, "    %s\n", firstLine(o.Comment))
			}
		}
	}

	fmt.Fprintf(&b, "%s %d  %s %d  %s %d  %s %d\n",
		style.Faint.Render("Triples:"), g.Len(),
		style.Faint.Render("Classes:"), len(g.Classes()),
		style.Faint.Render("Properties:"), len(g.Properties()),
		style.Faint.Render("Concepts:"), len(g.Concepts()),
	)

	for _, section := range []struct {
		title string
		kind  domain.EntityKind
	}{
		{"Class taxonomy:", domain.KindClass},
		{"Property taxonomy:", domain.KindProperty},
		{"Concept scheme:", domain.KindConcept},
	} {
		all := g.Kind(section.kind)
		if len(all) == 0 {
			continue
		}
		b.WriteString(style.Faint.Render(section.title))
		b.WriteString("\n")
		writeTree(&b, g.TopLevel(section.kind), all)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeTree prints the hierarchy below roots depth first with an explicit
// stack. An entity reached a second time is printed once more, marked, and
// not descended into, so cycles terminate. Entities of all that hang only
// off a cycle are printed as extra roots afterwards.
func writeTree(b *strings.Builder, roots, all []*domain.Entity) {
	seen := make(map[*domain.Entity]bool)
	for _, root := range roots {
		writeBranch(b, root, seen)
	}
	for _, e := range all {
		if !seen[e] {
			writeBranch(b, e, seen)
		}
	}
}

type frame struct {
	entity *domain.Entity
	depth  int
}

func writeBranch(b *strings.Builder, root *domain.Entity, seen map[*domain.Entity]bool) {
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		indent := "  "
		if f.depth > 0 {
			indent += strings.Repeat("   ", f.depth-1) + style.Branch + " "
		}

		if seen[f.entity] {
			fmt.Fprintf(b, "%s%s %s\n", indent, f.entity.Name(), style.Faint.Render(style.Arrow+" seen above"))
			continue
		}
		seen[f.entity] = true
		fmt.Fprintf(b, "%s%s\n", indent, f.entity.Name())

		children := f.entity.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], f.depth + 1})
		}
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
