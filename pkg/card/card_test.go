package card

import "testing"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"a.png", FormatPNG},
		{"A.PNG", FormatPNG},
		{"dir/a+.png", FormatPNG},
		{"a.jpg", FormatJPEG},
		{"a.JPEG", FormatJPEG},
		{"a.gif", FormatUnknown},
		{"a.png.txt", FormatUnknown},
		{"png", FormatUnknown},
		{"", FormatUnknown},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.name); got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		marker   string
		wantSide Side
		wantOK   bool
	}{
		{"strike.png", "+", Front, true},
		{"strike+.png", "+", Back, true},
		{"strike+.PNG", "+", Back, true},
		{"cards/strike+.jpg", "+", Back, true},
		{"+strike.png", "+", Front, true},
		{"strike+.txt", "+", Front, false},
		{"strike_back.png", "_back", Back, true},
		{"strike+.png", "_back", Front, true},
		{"strike+.png", "", Back, true},
		{"notes", "+", Front, false},
	}
	for _, tt := range tests {
		side, ok := Classify(tt.name, tt.marker)
		if side != tt.wantSide || ok != tt.wantOK {
			t.Errorf("Classify(%q, %q) = (%v, %v), want (%v, %v)",
				tt.name, tt.marker, side, ok, tt.wantSide, tt.wantOK)
		}
	}
}

func TestSideString(t *testing.T) {
	if Front.String() != "front" || Back.String() != "back" {
		t.Errorf("String() = %q, %q", Front.String(), Back.String())
	}
}

func TestCardDPI(t *testing.T) {
	c := Card{Source: "x/a.png", PixelWidth: 750, PixelHeight: 1050}
	x, y := c.DPI(2.5, 3.5)
	if x != 300 || y != 300 {
		t.Errorf("DPI() = %v, %v, want 300, 300", x, y)
	}
	if x, y := c.DPI(0, 3.5); x != 0 || y != 0 {
		t.Errorf("DPI(0, 3.5) = %v, %v, want 0, 0", x, y)
	}
	if c.Name() != "a.png" {
		t.Errorf("Name() = %q, want a.png", c.Name())
	}
}
