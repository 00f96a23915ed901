package pagecraft

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultsForEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			props, err := DefaultsFor(k)
			if err != nil {
				t.Fatalf("DefaultsFor(%v) failed: %v", k, err)
			}
			if len(props) == 0 {
				t.Errorf("DefaultsFor(%v) returned an empty bag", k)
			}
		})
	}
}

func TestDefaultsForUnknownKind(t *testing.T) {
	for _, k := range []Kind{0, Kind(6), Kind(255)} {
		if _, err := DefaultsFor(k); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("DefaultsFor(%d) error = %v, want ErrUnknownKind", k, err)
		}
	}
}

func TestDefaultsForReturnsCopy(t *testing.T) {
	first, _ := DefaultsFor(KindSlider)
	first["autoplay"] = Bool(false)
	first["images"] = List("x.jpg")

	second, _ := DefaultsFor(KindSlider)
	if autoplay, _ := second["autoplay"].AsBool(); !autoplay {
		t.Error("registry table was mutated through a returned bag")
	}
	images, _ := second["images"].AsList()
	if !reflect.DeepEqual(images, []string{PlaceholderSlide1, PlaceholderSlide2}) {
		t.Errorf("slider images = %v", images)
	}
}

func TestSeedsMatchFallbacks(t *testing.T) {
	for _, k := range []Kind{KindButton, KindText, KindContainer, KindImage} {
		spec, _ := Lookup(k)
		if !spec.Defaults().Equal(spec.Fallbacks()) {
			t.Errorf("%v: seed %#v differs from fallbacks %#v", k, spec.Defaults(), spec.Fallbacks())
		}
	}
}

func TestPalette(t *testing.T) {
	palette := Palette()
	wantLabels := []string{"Button", "Text", "Container", "Image", "Slider"}

	if len(palette) != len(wantLabels) {
		t.Fatalf("Palette() len = %d, want %d", len(palette), len(wantLabels))
	}
	for n, spec := range palette {
		if spec.Label != wantLabels[n] {
			t.Errorf("palette[%d].Label = %q, want %q", n, spec.Label, wantLabels[n])
		}
		if spec.Description == "" {
			t.Errorf("palette[%d] has no description", n)
		}
	}
}

func TestResolveFallbacks(t *testing.T) {
	if got := ResolveButton(nil); got != (ButtonProps{
		Text: "Button", BackgroundColor: "#6366f1", Color: "#ffffff",
		Padding: "12px 24px", Margin: "0", FontSize: "14px",
	}) {
		t.Errorf("ResolveButton(nil) = %+v", got)
	}

	if got := ResolveText(Props{"text": String(""), "color": String("red")}); got != (TextProps{
		Text: "Your text here", FontSize: "16px", Color: "red", Padding: "0", Margin: "0",
	}) {
		t.Errorf("ResolveText = %+v", got)
	}

	if got := ResolveContainer(Props{"minHeight": String("50vh")}); got.MinHeight != "50vh" || got.Padding != "20px" {
		t.Errorf("ResolveContainer = %+v", got)
	}

	if got := ResolveImage(Props{"src": Bool(true)}); got.Src != PlaceholderImage {
		t.Errorf("non-string src should fall back, got %q", got.Src)
	}

	slider := ResolveSlider(nil)
	if len(slider.Images) != 0 || slider.Autoplay || slider.Margin != "0" {
		t.Errorf("ResolveSlider(nil) = %+v", slider)
	}

	slider = ResolveSlider(Props{"images": List(), "autoplay": Bool(true)})
	if len(slider.Images) != 0 || !slider.Autoplay {
		t.Errorf("explicit empty list should stay empty: %+v", slider)
	}
}

func TestKindParseAndString(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), parsed, err)
		}
	}
	if _, err := ParseKind("carousel"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(carousel) error = %v", err)
	}
	if Kind(9).Valid() {
		t.Error("Kind(9) should be invalid")
	}
	if got := Kind(9).String(); got != "kind(9)" {
		t.Errorf("Kind(9).String() = %q", got)
	}
}
