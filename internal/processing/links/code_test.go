package links

import (
	"strings"
	"testing"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercase", "mylink", "MYLINK"},
		{"mixed case", "MyLink1", "MYLINK1"},
		{"already uppercase", "ABC123", "ABC123"},
		{"whitespace trimmed", "  abc123  ", "ABC123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCode(tt.raw); got != tt.want {
				t.Errorf("NormalizeCode(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidCodeFormat(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"six chars", "abc123", true},
		{"eight chars", "ABCD1234", true},
		{"mixed case", "MyLink", true},
		{"too short", "abc12", false},
		{"too long", "abc123456", false},
		{"hyphen", "abc-12", false},
		{"underscore", "abc_12", false},
		{"space inside", "abc 12", false},
		{"empty", "", false},
		{"surrounding whitespace ok", "  abc123  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCodeFormat(tt.code); got != tt.want {
				t.Errorf("ValidCodeFormat(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestIsReservedCode(t *testing.T) {
	for _, code := range []string{"API", "api", "Healthz", "CODE", "admin", "DASHBOARD"} {
		if !IsReservedCode(code) {
			t.Errorf("expected %q to be reserved", code)
		}
	}

	for _, code := range []string{"MYLINK", "abc123", ""} {
		if IsReservedCode(code) {
			t.Errorf("expected %q not to be reserved", code)
		}
	}
}

func TestCryptoCodeGeneratorGenerate(t *testing.T) {
	g := NewCryptoCodeGenerator()

	t.Run("correct length", func(t *testing.T) {
		code, err := g.Generate(8)
		if err != nil {
			t.Fatal(err)
		}
		if len(code) != 8 {
			t.Errorf("got length %d, want 8", len(code))
		}
	})

	t.Run("alphabet is A-Z0-9 only", func(t *testing.T) {
		code, err := g.Generate(200)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range code {
			if !strings.ContainsRune(codeAlphabet, c) {
				t.Errorf("code contains char outside alphabet: %q", c)
			}
		}
	})

	t.Run("zero length uses fallback", func(t *testing.T) {
		code, err := g.Generate(0)
		if err != nil {
			t.Fatal(err)
		}
		if len(code) != 6 {
			t.Errorf("got length %d, want 6 (fallback)", len(code))
		}
	})

	t.Run("generated codes satisfy the custom code format", func(t *testing.T) {
		for range 50 {
			code, err := g.Generate(6)
			if err != nil {
				t.Fatal(err)
			}
			if !ValidCodeFormat(code) {
				t.Fatalf("generated code %q fails format check", code)
			}
		}
	})

	t.Run("uniqueness over 100 calls", func(t *testing.T) {
		seen := make(map[string]struct{}, 100)
		for i := 0; i < 100; i++ {
			code, err := g.Generate(8)
			if err != nil {
				t.Fatal(err)
			}
			if _, exists := seen[code]; exists {
				t.Fatalf("duplicate code on iteration %d: %q", i, code)
			}
			seen[code] = struct{}{}
		}
	})
}
