package generator

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/pagecraft"
)

// File names of the exported site.
const (
	HTMLFile = "index.html"
	CSSFile  = "styles.css"
	JSFile   = "script.js"
)

// DefaultTitle is the <title> of generated pages.
const DefaultTitle = "Generated Website"

// Options configures the generator.
type Options struct {
	// Title is the page title; DefaultTitle when empty.
	Title string
}

// Bundle holds the three generated files.
type Bundle struct {
	HTML string
	CSS  string
	JS   string
}

// Page returns the generated HTML as a templ component.
func (b Bundle) Page() templ.Component {
	return templ.Raw(b.HTML)
}

// Generator turns a component tree into a static site bundle. It holds no
// mutable state; the same tree always yields byte-identical output.
type Generator struct {
	opts Options
}

// New creates a new generator.
func New(opts Options) *Generator {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	return &Generator{opts: opts}
}

// Generate renders tree with default options.
func Generate(tree *pagecraft.Tree) Bundle {
	return New(Options{}).Generate(tree)
}

// Generate renders tree into HTML, CSS and JS.
func (g *Generator) Generate(tree *pagecraft.Tree) Bundle {
	return Bundle{
		HTML: g.page(tree),
		CSS:  stylesheet,
		JS:   script,
	}
}

func (g *Generator) page(tree *pagecraft.Tree) string {
	roots := tree.Roots()
	body := make([]templ.Component, len(roots))
	for n, root := range roots {
		body[n] = FragmentComponent(root)
	}

	var sb strings.Builder
	// Every part writes to a strings.Builder, which never fails.
	if err := pageComponent(g.opts.Title, body).Render(context.Background(), &sb); err != nil {
		panic(fmt.Sprintf("generator: render page: %v", err))
	}
	return sb.String()
}

// pageComponent lays out the document around the root fragments, which are
// separated by a blank line. Title and fragments are written verbatim.
func pageComponent(title string, body []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []templ.Component{templ.Raw(pageHead), templ.Raw(title), templ.Raw(pageBodyOpen)}
		for n, c := range body {
			if n > 0 {
				parts = append(parts, templ.Raw("\n\n"))
			}
			parts = append(parts, c)
		}
		parts = append(parts, templ.Raw(pageBodyClose))

		for _, c := range parts {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Fragment renders one instance and its subtree as HTML. Unknown kinds
// render as the empty string so the rest of the page still generates.
func Fragment(inst *pagecraft.Instance) string {
	var sb strings.Builder
	writeFragment(&sb, inst)
	return sb.String()
}

// FragmentComponent returns Fragment(inst) as a templ component. The markup
// is produced when FragmentComponent is called, not at render time.
func FragmentComponent(inst *pagecraft.Instance) templ.Component {
	return templ.Raw(Fragment(inst))
}

func writeFragment(sb *strings.Builder, inst *pagecraft.Instance) {
	if inst == nil {
		return
	}
	props := inst.Props()

	switch inst.Kind() {
	case pagecraft.KindButton:
		writeButton(sb, pagecraft.ResolveButton(props))
	case pagecraft.KindText:
		writeText(sb, pagecraft.ResolveText(props))
	case pagecraft.KindContainer:
		writeContainer(sb, pagecraft.ResolveContainer(props), inst.Children())
	case pagecraft.KindImage:
		writeImage(sb, pagecraft.ResolveImage(props))
	case pagecraft.KindSlider:
		writeSlider(sb, pagecraft.ResolveSlider(props))
	}
}

func writeButton(sb *strings.Builder, p pagecraft.ButtonProps) {
	fmt.Fprintf(sb, `<button style="background-color: %s; color: %s; padding: %s; margin: %s; font-size: %s; border: none; border-radius: 6px; cursor: pointer; font-weight: 500;">%s</button>`,
		p.BackgroundColor, p.Color, p.Padding, p.Margin, p.FontSize, p.Text)
}

func writeText(sb *strings.Builder, p pagecraft.TextProps) {
	fmt.Fprintf(sb, `<div style="font-size: %s; color: %s; padding: %s; margin: %s; line-height: 1.5;">%s</div>`,
		p.FontSize, p.Color, p.Padding, p.Margin, p.Text)
}

func writeContainer(sb *strings.Builder, p pagecraft.ContainerProps, children []*pagecraft.Instance) {
	fmt.Fprintf(sb, `<div style="background-color: %s; padding: %s; margin: %s; min-height: %s; border-radius: 8px;">`,
		p.BackgroundColor, p.Padding, p.Margin, p.MinHeight)
	sb.WriteString("\n")

	if len(children) == 0 {
		sb.WriteString(emptyContainer)
	}
	for n, child := range children {
		if n > 0 {
			sb.WriteString("\n")
		}
		writeFragment(sb, child)
	}

	sb.WriteString("\n</div>")
}

func writeImage(sb *strings.Builder, p pagecraft.ImageProps) {
	fmt.Fprintf(sb, `<img src="%s" alt="%s" style="width: %s; height: %s; object-fit: cover; border-radius: 8px; margin: %s;" />`,
		p.Src, p.Alt, p.Width, p.Height, p.Margin)
}

func writeSlider(sb *strings.Builder, p pagecraft.SliderProps) {
	sb.WriteString(`<div class="slider"`)
	if p.Autoplay {
		sb.WriteString(` data-autoplay="true"`)
	}
	fmt.Fprintf(sb, ` style="width: 100%%; max-width: 600px; margin: %s; position: relative; overflow: hidden; border-radius: 8px;">`, p.Margin)
	sb.WriteString("\n")

	sb.WriteString(`<div class="slider-container" style="display: flex; transition: transform 0.3s ease;">`)
	sb.WriteString("\n")
	for n, src := range p.Images {
		fmt.Fprintf(sb, `<img src="%s" alt="Slide %d" style="width: 100%%; height: 300px; object-fit: cover; flex-shrink: 0;" />`, src, n+1)
		sb.WriteString("\n")
	}
	sb.WriteString("</div>\n")

	sb.WriteString(sliderPrev)
	sb.WriteString("\n")
	sb.WriteString(sliderNext)
	sb.WriteString("\n")

	sb.WriteString(`<div class="slider-dots" style="text-align: center; margin-top: 10px;">`)
	sb.WriteString("\n")
	for n := range p.Images {
		fmt.Fprintf(sb, `<span class="slider-dot" data-slide="%d" style="display: inline-block; width: 12px; height: 12px; border-radius: 50%%; background: #ccc; margin: 0 5px; cursor: pointer;"></span>`, n)
		sb.WriteString("\n")
	}
	sb.WriteString("</div>\n")

	sb.WriteString("</div>")
}
