package palette

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/jasonlovesdoggo/gitsocial/pkg/errors"
)

func TestLookupComplete(t *testing.T) {
	for _, id := range Themes() {
		t.Run(string(id), func(t *testing.T) {
			p, err := Lookup(id)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", id, err)
			}
			if p.Name != id {
				t.Errorf("Name = %q, want %q", p.Name, id)
			}
			v := reflect.ValueOf(p)
			for i := 0; i < v.NumField(); i++ {
				c, ok := v.Field(i).Interface().(color.RGBA)
				if !ok {
					continue
				}
				if c.A != 0xff {
					t.Errorf("%s.%s is unset", id, v.Type().Field(i).Name)
				}
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("unknown-theme")
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if !errors.Is(err, errors.ErrCodeUnknownTheme) {
		t.Errorf("code = %v, want UNKNOWN_THEME", errors.GetCode(err))
	}
	if !errors.IsConfiguration(err) {
		t.Error("unknown theme should be a configuration error")
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    ThemeID
		wantErr bool
	}{
		{"mocha", Mocha, false},
		{" Latte ", Latte, false},
		{"MACCHIATO", Macchiato, false},
		{"", "", true},
		{"dracula", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(mocha.Base); got != "#1e1e2e" {
		t.Errorf("Hex(mocha.Base) = %s, want #1e1e2e", got)
	}
	if got := Hex(latte.Peach); got != "#fe640b" {
		t.Errorf("Hex(latte.Peach) = %s, want #fe640b", got)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		id   ThemeID
		want string
	}{
		{Latte, "Catppuccin Latte"},
		{Frappe, "Catppuccin Frappe"},
		{Macchiato, "Catppuccin Macchiato"},
		{Mocha, "Catppuccin Mocha"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := tt.id.Title(); got != tt.want {
			t.Errorf("%q.Title() = %q, want %q", tt.id, got, tt.want)
		}
	}
}
