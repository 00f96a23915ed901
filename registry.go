package pagecraft

import "fmt"

// Placeholder sources used when an image or slider has no configured media.
const (
	PlaceholderImage  = "https://via.placeholder.com/300x200"
	PlaceholderSlide1 = "https://via.placeholder.com/600x300?text=Slide+1"
	PlaceholderSlide2 = "https://via.placeholder.com/600x300?text=Slide+2"
)

// Spec describes one component kind: how it appears in the palette, the
// properties a freshly dropped instance is seeded with, and the values the
// generator falls back to for keys missing from an instance.
type Spec struct {
	Kind        Kind
	Label       string
	Description string
	defaults    Props
	fallbacks   Props
}

// Defaults returns a copy of the insert-time property seed.
func (s Spec) Defaults() Props {
	return s.defaults.Clone()
}

// Fallbacks returns a copy of the render-time fallback values.
func (s Spec) Fallbacks() Props {
	return s.fallbacks.Clone()
}

var (
	buttonFallbacks = Props{
		"text":            String("Button"),
		"backgroundColor": String("#6366f1"),
		"color":           String("#ffffff"),
		"padding":         String("12px 24px"),
		"margin":          String("0"),
		"fontSize":        String("14px"),
	}
	textFallbacks = Props{
		"text":     String("Your text here"),
		"fontSize": String("16px"),
		"color":    String("#000000"),
		"padding":  String("0"),
		"margin":   String("0"),
	}
	containerFallbacks = Props{
		"backgroundColor": String("#f8fafc"),
		"padding":         String("20px"),
		"margin":          String("0"),
		"minHeight":       String("100px"),
	}
	imageFallbacks = Props{
		"src":    String(PlaceholderImage),
		"alt":    String("Image"),
		"width":  String("300px"),
		"height": String("200px"),
		"margin": String("0"),
	}
	sliderFallbacks = Props{
		"images":   List(),
		"autoplay": Bool(false),
		"margin":   String("0"),
	}
)

// specs is fixed at init and never written afterwards; accessors hand out
// clones.
var specs = map[Kind]Spec{
	KindButton: {
		Kind:        KindButton,
		Label:       "Button",
		Description: "Interactive button element",
		defaults:    buttonFallbacks,
		fallbacks:   buttonFallbacks,
	},
	KindText: {
		Kind:        KindText,
		Label:       "Text",
		Description: "Text content element",
		defaults:    textFallbacks,
		fallbacks:   textFallbacks,
	},
	KindContainer: {
		Kind:        KindContainer,
		Label:       "Container",
		Description: "Layout container for other elements",
		defaults:    containerFallbacks,
		fallbacks:   containerFallbacks,
	},
	KindImage: {
		Kind:        KindImage,
		Label:       "Image",
		Description: "Image display element",
		defaults:    imageFallbacks,
		fallbacks:   imageFallbacks,
	},
	KindSlider: {
		Kind:        KindSlider,
		Label:       "Slider",
		Description: "Image carousel slider",
		defaults: Props{
			"images":   List(PlaceholderSlide1, PlaceholderSlide2),
			"autoplay": Bool(true),
		},
		fallbacks: sliderFallbacks,
	},
}

// Lookup returns the registry entry for kind.
func Lookup(kind Kind) (Spec, error) {
	spec, ok := specs[kind]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return spec, nil
}

// DefaultsFor returns the property seed for a new instance of kind.
func DefaultsFor(kind Kind) (Props, error) {
	spec, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	return spec.Defaults(), nil
}

// Palette returns the registry entries in palette order.
func Palette() []Spec {
	out := make([]Spec, 0, len(specs))
	for _, k := range Kinds() {
		out = append(out, specs[k])
	}
	return out
}

// ButtonProps is the resolved property record of a button.
type ButtonProps struct {
	Text            string
	BackgroundColor string
	Color           string
	Padding         string
	Margin          string
	FontSize        string
}

// TextProps is the resolved property record of a text block.
type TextProps struct {
	Text     string
	FontSize string
	Color    string
	Padding  string
	Margin   string
}

// ContainerProps is the resolved property record of a container.
type ContainerProps struct {
	BackgroundColor string
	Padding         string
	Margin          string
	MinHeight       string
}

// ImageProps is the resolved property record of an image.
type ImageProps struct {
	Src    string
	Alt    string
	Width  string
	Height string
	Margin string
}

// SliderProps is the resolved property record of a slider.
type SliderProps struct {
	Images   []string
	Autoplay bool
	Margin   string
}

func fallback(p Props, key string) string {
	s, _ := p[key].AsString()
	return s
}

// ResolveButton fills missing button properties from the fallback table.
func ResolveButton(p Props) ButtonProps {
	fb := buttonFallbacks
	return ButtonProps{
		Text:            p.Str("text", fallback(fb, "text")),
		BackgroundColor: p.Str("backgroundColor", fallback(fb, "backgroundColor")),
		Color:           p.Str("color", fallback(fb, "color")),
		Padding:         p.Str("padding", fallback(fb, "padding")),
		Margin:          p.Str("margin", fallback(fb, "margin")),
		FontSize:        p.Str("fontSize", fallback(fb, "fontSize")),
	}
}

// ResolveText fills missing text properties from the fallback table.
func ResolveText(p Props) TextProps {
	fb := textFallbacks
	return TextProps{
		Text:     p.Str("text", fallback(fb, "text")),
		FontSize: p.Str("fontSize", fallback(fb, "fontSize")),
		Color:    p.Str("color", fallback(fb, "color")),
		Padding:  p.Str("padding", fallback(fb, "padding")),
		Margin:   p.Str("margin", fallback(fb, "margin")),
	}
}

// ResolveContainer fills missing container properties from the fallback table.
func ResolveContainer(p Props) ContainerProps {
	fb := containerFallbacks
	return ContainerProps{
		BackgroundColor: p.Str("backgroundColor", fallback(fb, "backgroundColor")),
		Padding:         p.Str("padding", fallback(fb, "padding")),
		Margin:          p.Str("margin", fallback(fb, "margin")),
		MinHeight:       p.Str("minHeight", fallback(fb, "minHeight")),
	}
}

// ResolveImage fills missing image properties from the fallback table.
func ResolveImage(p Props) ImageProps {
	fb := imageFallbacks
	return ImageProps{
		Src:    p.Str("src", fallback(fb, "src")),
		Alt:    p.Str("alt", fallback(fb, "alt")),
		Width:  p.Str("width", fallback(fb, "width")),
		Height: p.Str("height", fallback(fb, "height")),
		Margin: p.Str("margin", fallback(fb, "margin")),
	}
}

// ResolveSlider fills missing slider properties from the fallback table.
func ResolveSlider(p Props) SliderProps {
	fb := sliderFallbacks
	images, _ := fb["images"].AsList()
	autoplay, _ := fb["autoplay"].AsBool()
	return SliderProps{
		Images:   p.Strings("images", images),
		Autoplay: p.Flag("autoplay", autoplay),
		Margin:   p.Str("margin", fallback(fb, "margin")),
	}
}
