package vd

import (
	"strings"
	"testing"
)

const sampleDrawable = `<vector xmlns:android="http://schemas.android.com/apk/res/android"
    android:width="24dp"
    android:height="24dp"
    android:viewportWidth="24"
    android:viewportHeight="24">
  <path
      android:fillColor="#FF336699"
      android:pathData="M12,2L2,22h20z"/>
</vector>`

func TestConvert_Basic(t *testing.T) {
	out, err := Convert(sampleDrawable, Options{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`width="24"`,
		`height="24"`,
		`viewBox="0 0 24 24"`,
		`<path d="M12,2L2,22h20z"`,
		`fill="#336699"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q\ngot: %s", want, out)
		}
	}
	if strings.Contains(out, "<?xml") {
		t.Error("output should not contain an XML declaration by default")
	}
}

func TestConvert_Deterministic(t *testing.T) {
	first, err := Convert(sampleDrawable, Options{Precision: 3})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	second, err := Convert(sampleDrawable, Options{Precision: 3})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if first != second {
		t.Error("Convert() is not deterministic")
	}
}

func TestConvert_XMLDeclaration(t *testing.T) {
	out, err := Convert(sampleDrawable, Options{XMLDeclaration: true})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("output should start with the XML declaration, got %q", out[:40])
	}
}

func TestConvert_FillOverrides(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "force black fill", opts: Options{ForceBlackFill: true}, want: `fill="#000000"`},
		{name: "tint", opts: Options{Tint: "#ff0000"}, want: `fill="#ff0000"`},
		{name: "tint wins over force black", opts: Options{ForceBlackFill: true, Tint: "#ff0000"}, want: `fill="#ff0000"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(sampleDrawable, tt.opts)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output should contain %q\ngot: %s", tt.want, out)
			}
		})
	}
}

func TestConvert_Precision(t *testing.T) {
	input := `<vector xmlns:android="http://schemas.android.com/apk/res/android"
    android:viewportWidth="24.567" android:viewportHeight="10.001">
  <path android:pathData="M0,0h1"/>
</vector>`

	tests := []struct {
		name      string
		precision int
		want      string
	}{
		{name: "default rounds to 2 digits", precision: 0, want: `viewBox="0 0 24.57 10"`},
		{name: "1 digit", precision: 1, want: `viewBox="0 0 24.6 10"`},
		{name: "3 digits", precision: 3, want: `viewBox="0 0 24.567 10.001"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(input, Options{Precision: tt.precision})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output should contain %q\ngot: %s", tt.want, out)
			}
		})
	}
}

func TestConvert_GroupAndStroke(t *testing.T) {
	input := `<vector xmlns:android="http://schemas.android.com/apk/res/android"
    android:viewportWidth="48" android:viewportHeight="48">
  <group android:translateX="4" android:translateY="6" android:rotation="90"
      android:pivotX="24" android:pivotY="24" android:scaleX="0.5">
    <path android:pathData="M0,0h10"
        android:strokeColor="#FF112233" android:strokeWidth="1.5"/>
  </group>
</vector>`

	out, err := Convert(input, Options{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	for _, want := range []string{
		`<g transform="translate(4 6) rotate(90 24 24) scale(0.5 1)">`,
		`stroke="#112233"`,
		`stroke-width="1.5"`,
		`</g>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q\ngot: %s", want, out)
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed XML", input: "<vector"},
		{name: "wrong root element", input: `<shape xmlns:android="http://schemas.android.com/apk/res/android"/>`},
		{name: "missing viewport", input: `<vector xmlns:android="http://schemas.android.com/apk/res/android"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Convert(tt.input, Options{}); err == nil {
				t.Error("Convert() expected error")
			}
		})
	}
}

func TestOptionsResolve(t *testing.T) {
	if got := (Options{}).Resolve().Precision; got != DefaultPrecision {
		t.Errorf("Resolve() precision = %d, want %d", got, DefaultPrecision)
	}
	if got := (Options{Precision: 5}).Resolve().Precision; got != 5 {
		t.Errorf("Resolve() precision = %d, want 5", got)
	}
}
