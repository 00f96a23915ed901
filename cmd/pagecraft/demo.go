package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pthm/pagecraft"
	"github.com/pthm/pagecraft/lib/bundle"
	"github.com/pthm/pagecraft/lib/generator"
)

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	out := fs.String("o", bundle.ArchiveName, "output archive")
	dir := fs.String("dir", "", "write loose files to this directory instead")
	title := fs.String("title", "Pagecraft Demo", "generated page title")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tree, err := buildShowcase()
	if err != nil {
		return fmt.Errorf("build showcase: %w", err)
	}
	b := generator.New(generator.Options{Title: *title}).Generate(tree)

	var exp bundle.Exporter = bundle.ZipFile{Path: *out}
	dest := *out
	if *dir != "" {
		exp = bundle.Directory{Path: *dir}
		dest = *dir
	}
	if err := exp.Export(context.Background(), b); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %d components to %s\n", tree.Len(), dest)
	return nil
}

// showcaseStep is one palette drop followed by a property patch. Parent
// refers to an earlier step by index; -1 drops onto the canvas.
type showcaseStep struct {
	Kind   pagecraft.Kind
	Parent int
	Props  pagecraft.Props
}

var showcase = []showcaseStep{
	{Kind: pagecraft.KindText, Parent: -1, Props: pagecraft.Props{
		"text":     pagecraft.String("Build pages by dragging components"),
		"fontSize": pagecraft.String("32px"),
		"margin":   pagecraft.String("0 0 16px 0"),
	}},
	{Kind: pagecraft.KindContainer, Parent: -1, Props: pagecraft.Props{
		"backgroundColor": pagecraft.String("#eef2ff"),
	}},
	{Kind: pagecraft.KindImage, Parent: 1, Props: pagecraft.Props{
		"alt": pagecraft.String("Hero"),
	}},
	{Kind: pagecraft.KindText, Parent: 1, Props: pagecraft.Props{
		"text":    pagecraft.String("Every component exports to plain HTML, CSS and JS."),
		"padding": pagecraft.String("12px 0"),
	}},
	{Kind: pagecraft.KindButton, Parent: 1, Props: pagecraft.Props{
		"text": pagecraft.String("Get started"),
	}},
	{Kind: pagecraft.KindSlider, Parent: -1, Props: pagecraft.Props{
		"margin": pagecraft.String("24px 0"),
	}},
}

// buildShowcase assembles the demo page through the placement resolver,
// the same path editor drops take.
func buildShowcase() (*pagecraft.Tree, error) {
	tree := pagecraft.NewTree()
	r := pagecraft.NewResolver(tree)
	placed := make([]string, 0, len(showcase))

	for n, step := range showcase {
		target := pagecraft.RootTarget()
		if step.Parent >= 0 {
			target = pagecraft.ContainerTarget(placed[step.Parent])
		}

		r.Start(pagecraft.FromPalette(step.Kind))
		p := r.Drop(target)
		if p.Err != nil {
			return nil, fmt.Errorf("step %d: %w", n, p.Err)
		}
		if p.Outcome != pagecraft.OutcomeInserted {
			return nil, fmt.Errorf("step %d: drop %s", n, p.Outcome)
		}

		id := p.Instance.ID()
		placed = append(placed, id)
		if err := tree.UpdateProperties(id, step.Props); err != nil {
			return nil, fmt.Errorf("step %d: %w", n, err)
		}
	}
	return tree, nil
}
