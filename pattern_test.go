package paint

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestRepetitionFlags tests the mode-to-flags decomposition for all four modes.
func TestRepetitionFlags(t *testing.T) {
	tests := []struct {
		name        string
		rep         Repetition
		wantRepeatX bool
		wantRepeatY bool
	}{
		{"repeat", Repeat, true, true},
		{"repeat-x", RepeatX, true, false},
		{"repeat-y", RepeatY, false, true},
		{"no-repeat", NoRepeat, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPattern(nil, 0, 0, tt.rep)
			if p.RepeatX() != tt.wantRepeatX || p.RepeatY() != tt.wantRepeatY {
				t.Errorf("NewPattern(%v) flags = (%v, %v), want (%v, %v)",
					tt.rep, p.RepeatX(), p.RepeatY(), tt.wantRepeatX, tt.wantRepeatY)
			}
		})
	}
}

// TestRepetitionString tests the canvas keyword names.
func TestRepetitionString(t *testing.T) {
	tests := []struct {
		rep  Repetition
		want string
	}{
		{Repeat, "repeat"},
		{RepeatX, "repeat-x"},
		{RepeatY, "repeat-y"},
		{NoRepeat, "no-repeat"},
		{Repetition(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.rep.String(); got != tt.want {
			t.Errorf("Repetition(%d).String() = %q, want %q", int(tt.rep), got, tt.want)
		}
	}
}

// TestParseRepetition tests keyword parsing, including the empty-string default.
func TestParseRepetition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Repetition
		wantErr bool
	}{
		{"repeat", "repeat", Repeat, false},
		{"repeat-x", "repeat-x", RepeatX, false},
		{"repeat-y", "repeat-y", RepeatY, false},
		{"no-repeat", "no-repeat", NoRepeat, false},
		{"empty string defaults to repeat", "", Repeat, false},
		{"unknown keyword", "mirror", 0, true},
		{"case sensitive", "Repeat", 0, true},
		{"whitespace", " repeat", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepetition(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRepetition) {
					t.Fatalf("ParseRepetition(%q) error = %v, want ErrInvalidRepetition", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepetition(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRepetition(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestRepetitionFlagsPanic verifies that an out-of-range mode fails loudly
// instead of decomposing to a default.
func TestRepetitionFlagsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPattern with out-of-range Repetition did not panic")
		}
	}()
	NewPattern(nil, 0, 0, Repetition(42))
}

// TestPatternToFillOrStrokeStyle tests the full round-trip of stored fields
// into the surface style.
func TestPatternToFillOrStrokeStyle(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		width  int
		height int
		rep    Repetition
	}{
		{"2x1 repeat", []byte{1, 2, 3, 4, 5, 6, 7, 8}, 2, 1, Repeat},
		{"1x2 repeat-x", []byte{9, 8, 7, 6, 5, 4, 3, 2}, 1, 2, RepeatX},
		{"2x2 no-repeat", make([]byte, 16), 2, 2, NoRepeat},
		{"empty", nil, 0, 0, Repeat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPattern(tt.data, tt.width, tt.height, tt.rep)
			wantX, wantY := tt.rep.flags()

			style := p.ToFillOrStrokeStyle()
			surface, ok := style.(SurfaceStyle)
			if !ok {
				t.Fatalf("ToFillOrStrokeStyle() = %T, want SurfaceStyle", style)
			}

			want := SurfaceStyle{
				Data:    tt.data,
				Width:   tt.width,
				Height:  tt.height,
				RepeatX: wantX,
				RepeatY: wantY,
			}
			if diff := cmp.Diff(want, surface, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("SurfaceStyle mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestPatternStyleIndependence verifies that repeated conversions are
// value-equal but independently owned: mutating one style's pixels must not
// affect the other or the pattern.
func TestPatternStyleIndependence(t *testing.T) {
	data := []byte{10, 20, 30, 40}
	p := NewPattern(data, 1, 1, Repeat)

	s1 := p.ToFillOrStrokeStyle().(SurfaceStyle)
	s2 := p.ToFillOrStrokeStyle().(SurfaceStyle)
	if diff := cmp.Diff(s1, s2); diff != "" {
		t.Fatalf("repeated conversions differ (-s1 +s2):\n%s", diff)
	}

	s1.Data[0] = 0xFF
	if s2.Data[0] != 10 {
		t.Error("mutating one style's pixels modified the other style")
	}
	if got := p.Data(); got[0] != 10 {
		t.Error("mutating a style's pixels modified the pattern")
	}
}

// TestPatternDegenerateModes covers the all-off and all-on flag combinations.
func TestPatternDegenerateModes(t *testing.T) {
	buf := make([]byte, 4*4*4)

	off := NewPattern(buf, 4, 4, NoRepeat)
	if off.RepeatX() || off.RepeatY() {
		t.Errorf("NoRepeat flags = (%v, %v), want (false, false)", off.RepeatX(), off.RepeatY())
	}

	on := NewPattern(buf, 4, 4, Repeat)
	if !on.RepeatX() || !on.RepeatY() {
		t.Errorf("Repeat flags = (%v, %v), want (true, true)", on.RepeatX(), on.RepeatY())
	}
}

// TestPatternSinglePixel is the end-to-end check: a 1x1 opaque black pattern
// with repeat-y must survive conversion field for field.
func TestPatternSinglePixel(t *testing.T) {
	p := NewPattern([]byte{0, 0, 0, 255}, 1, 1, RepeatY)

	style, ok := p.ToFillOrStrokeStyle().(SurfaceStyle)
	if !ok {
		t.Fatal("conversion did not produce a SurfaceStyle")
	}
	if style.Width != 1 || style.Height != 1 {
		t.Errorf("size = %dx%d, want 1x1", style.Width, style.Height)
	}
	if style.RepeatX != false || style.RepeatY != true {
		t.Errorf("flags = (%v, %v), want (false, true)", style.RepeatX, style.RepeatY)
	}
	if diff := cmp.Diff([]byte{0, 0, 0, 255}, style.Data); diff != "" {
		t.Errorf("pixel data mismatch (-want +got):\n%s", diff)
	}
}

// TestPatternValidate tests the opt-in layout check.
func TestPatternValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		width   int
		height  int
		wantErr bool
	}{
		{"well-formed 1x1", make([]byte, 4), 1, 1, false},
		{"well-formed 3x2", make([]byte, 24), 3, 2, false},
		{"empty 0x0", nil, 0, 0, false},
		{"short buffer", make([]byte, 3), 1, 1, true},
		{"long buffer", make([]byte, 8), 1, 1, true},
		{"negative width", nil, -1, 1, true},
		{"negative height", nil, 1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPattern(tt.data, tt.width, tt.height, Repeat)
			err := p.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSurfaceLayout) {
					t.Errorf("Validate() = %v, want ErrInvalidSurfaceLayout", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

// TestNewPatternFromPixmap verifies the pattern copies the pixmap's pixels
// rather than sharing them.
func TestNewPatternFromPixmap(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(Red)

	p := NewPatternFromPixmap(pm, RepeatX)
	if p.Width() != 2 || p.Height() != 2 {
		t.Fatalf("pattern size = %dx%d, want 2x2", p.Width(), p.Height())
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if !p.RepeatX() || p.RepeatY() {
		t.Errorf("flags = (%v, %v), want (true, false)", p.RepeatX(), p.RepeatY())
	}

	// Later pixmap edits must not leak into the pattern.
	pm.Clear(Blue)
	data := p.Data()
	if data[0] != 255 || data[2] != 0 {
		t.Errorf("pattern pixels changed after pixmap edit: got (%d, %d, %d, %d)",
			data[0], data[1], data[2], data[3])
	}
}

// TestPatternConcurrentConversion exercises concurrent readers; a pattern
// has no post-construction writes, so this must be race-free.
func TestPatternConcurrentConversion(t *testing.T) {
	data := make([]byte, 8*8*4)
	for i := range data {
		data[i] = byte(i)
	}
	p := NewPattern(data, 8, 8, Repeat)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				style := p.ToFillOrStrokeStyle().(SurfaceStyle)
				if len(style.Data) != len(data) {
					t.Errorf("conversion returned %d bytes, want %d", len(style.Data), len(data))
					return
				}
				// Writes to the private copy must be invisible to others.
				style.Data[0] = 0xAB
			}
		}()
	}
	wg.Wait()

	if got := p.Data(); got[0] != 0 {
		t.Errorf("pattern data mutated by concurrent conversions: got %d, want 0", got[0])
	}
}
