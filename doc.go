// Package pagecraft provides the component model of a drag-and-drop page
// builder: a fixed palette of component kinds, an ordered tree of placed
// instances, and the placement rules that turn drops into tree mutations.
//
// # Core Concepts
//
// Every placed component is an Instance with a unique id, a Kind, a property
// bag and, for containers only, an ordered list of children:
//
//	tree := pagecraft.NewTree()
//	btn, _ := tree.NewInstance(pagecraft.KindButton)
//	tree.InsertAtRoot(btn)
//
// New instances are seeded from the registry (see Lookup and Palette). Each
// Spec also carries the fallback values used when a key is missing from an
// instance at render time, resolved into typed records by ResolveButton,
// ResolveText, ResolveContainer, ResolveImage and ResolveSlider.
//
// Property values are a tagged union of string, bool and string list:
//
//	tree.UpdateProperties(btn.ID(), pagecraft.Props{
//	    "text":     pagecraft.String("Buy now"),
//	    "autoplay": pagecraft.Bool(true),
//	})
//
// Updates merge; keys absent from the patch keep their values.
//
// # Drag and Drop
//
// Drag sources and drop targets are explicit variants, never inferred from
// payload shape:
//
//	r := pagecraft.NewResolver(tree)
//	r.Start(pagecraft.FromPalette(pagecraft.KindImage))
//	p := r.Drop(pagecraft.ContainerTarget(boxID))
//
// A palette source dropped on the canvas or a container inserts a new
// instance. Canvas sources are ignored and drops outside every target cancel.
// Insertion failures come back in Placement.Err with the tree untouched.
//
// # Drag Tokens
//
// Clients carry drag sources as signed tokens so they cannot be forged:
//
//	enc, _ := pagecraft.NewEncoder(key)
//	token, _ := pagecraft.EncodeSource(enc, pagecraft.FromPalette(pagecraft.KindText))
//	src, err := pagecraft.DecodeSource(enc, token) // err wraps ErrInvalidToken on tamper
//
// # Site Generation
//
// The generator package renders a tree to a self-contained HTML/CSS/JS site
// and the bundle package writes it as website.zip. The editor package wraps
// a tree in a concurrency-safe session with an HTTP surface.
//
// # Error Handling
//
// Operations wrap the sentinel errors with context; check them with
// errors.Is or the IsNotFound and IsNotAContainer helpers.
//
// # Testing
//
// BuildTree and MustBuildTree assemble trees with predictable ids:
//
//	tree := pagecraft.MustBuildTree([]pagecraft.Node{
//	    {Kind: pagecraft.KindContainer, Children: []pagecraft.Node{
//	        {Kind: pagecraft.KindText},
//	    }},
//	})
//	tree.Find("c-2") // the text
package pagecraft
