package canvas

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"red", color.NRGBA{255, 0, 0, 255}},
		{"  RebeccaPurple ", color.NRGBA{102, 51, 153, 255}},
		{"transparent", color.NRGBA{}},
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"#0f08", color.NRGBA{0, 255, 0, 136}},
		{"#336699", color.NRGBA{51, 102, 153, 255}},
		{"#33669980", color.NRGBA{51, 102, 153, 128}},
		{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 255}},
		{"rgba(10, 20, 30, 0.5)", color.NRGBA{10, 20, 30, 128}},
		{"rgb(100%, 0%, 50%)", color.NRGBA{255, 0, 128, 255}},
		{"rgb(10 20 30 / 25%)", color.NRGBA{10, 20, 30, 64}},
		{"rgb(300, -5, 0)", color.NRGBA{255, 0, 0, 255}},
		{"hsl(120, 100%, 50%)", color.NRGBA{0, 255, 0, 255}},
		{"hsla(240deg, 100%, 50%, 0.2)", color.NRGBA{0, 0, 255, 51}},
		{"hsl(0 0% 100%)", color.NRGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.in, err)
			}
			got := c.Color().(color.NRGBA)
			if !near(got, tt.want, 1) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{
		"", "nope", "#12", "#12345", "#ggg", "rgb(1, 2)", "rgb(1, 2, x)",
		"rgb 1 2 3", "hsl(10, 20, 30)", "rgba(1, 2, 3, 4, 5)",
	} {
		if _, err := ParseColor(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseColor(%q) error = %v, want ErrSyntax", in, err)
		}
	}
}

func TestRGBAString(t *testing.T) {
	tests := []struct {
		c    RGBA
		want string
	}{
		{Black, "#000000"},
		{RGBA{1, 0.5, 0, 1}, "#ff8000"},
		{Transparent, "rgba(0, 0, 0, 0)"},
		{RGBA{1, 0, 0, 0.5}, "rgba(255, 0, 0, 0.502)"},
		{RGBA{0, 0, 1, 0.25}, "rgba(0, 0, 255, 0.251)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := color.NRGBA{12, 34, 56, 78}
	got := FromColor(in).Color()
	if got != in {
		t.Errorf("FromColor(%v).Color() = %v", in, got)
	}
}

func TestColorClampsOutOfRange(t *testing.T) {
	got := RGBA{R: 2, G: -1, B: math.NaN(), A: 1}.Color().(color.NRGBA)
	want := color.NRGBA{255, 0, 0, 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestMustParseColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseColor did not panic on invalid input")
		}
	}()
	MustParseColor("not a colour")
}
