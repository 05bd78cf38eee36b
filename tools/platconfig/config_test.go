package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConstantName(t *testing.T) {
	specs := []struct {
		key string
		exp string
	}{
		{"uart-paddr", "UARTPaddr"},
		{"uart-irq", "UARTIRQ"},
		{"uart-reg-shift", "UARTRegShift"},
		{"phys-virt-offset", "PhysVirtOffset"},
		{"page_size", "PageSize"},
		{"MMIO-base", "MMIOBase"},
		{"cpu-num", "CPUNum"},
	}

	for specIndex, spec := range specs {
		if got := constantName(spec.key); got != spec.exp {
			t.Errorf("[spec %d] expected %q for %q; got %q", specIndex, spec.exp, spec.key, got)
		}
	}
}

func TestParseValue(t *testing.T) {
	specs := []struct {
		in     any
		exp    uint64
		expErr bool
	}{
		{int64(0), 0, false},
		{int64(0x3f8), 0x3f8, false},
		{"0xffff_0000_0000_0000", 0xffff000000000000, false},
		{"4096", 4096, false},
		{"0o17", 15, false},
		{int64(-1), 0, true},
		{"nope", 0, true},
		{"0x1_0000_0000_0000_0000", 0, true},
		{3.5, 0, true},
		{true, 0, true},
	}

	for specIndex, spec := range specs {
		got, err := parseValue(spec.in)
		if spec.expErr {
			if !errors.Is(err, errBadValue) {
				t.Errorf("[spec %d] expected errBadValue for %v; got %v", specIndex, spec.in, err)
			}
			continue
		}
		if err != nil || got != spec.exp {
			t.Errorf("[spec %d] expected %#x for %v; got %#x, %v", specIndex, spec.exp, spec.in, got, err)
		}
	}
}

func TestParseConfigErrors(t *testing.T) {
	specs := []struct {
		name   string
		doc    string
		expErr string
	}{
		{"missing arch", "platform = \"x\"\npackage = \"x\"\n", `missing required key "arch"`},
		{"non-string platform", "platform = 1\narch = \"a\"\npackage = \"x\"\n", `key "platform"`},
		{"bad package", "platform = \"x\"\narch = \"a\"\npackage = \"my-pkg\"\n", "not a valid package name"},
		{"unknown key", "platform = \"x\"\narch = \"a\"\npackage = \"x\"\nfoo = 1\n", `unknown top-level key "foo"`},
		{"bad value", "platform = \"x\"\narch = \"a\"\npackage = \"x\"\n[devices]\nuart-paddr = \"zz\"\n", "[devices] uart-paddr"},
		{"bad name", "platform = \"x\"\narch = \"a\"\npackage = \"x\"\n[devices]\n\"9lives\" = 1\n", "exported Go name"},
		{"duplicate name", "platform = \"x\"\narch = \"a\"\npackage = \"x\"\n[a]\npage-size = 1\n[b]\npage_size = 2\n", "both map to PageSize"},
		{"not toml", "platform = ", "decoding toml"},
	}

	for _, spec := range specs {
		t.Run(spec.name, func(t *testing.T) {
			_, err := parseConfig([]byte(spec.doc))
			if err == nil || !strings.Contains(err.Error(), spec.expErr) {
				t.Fatalf("expected error containing %q; got %v", spec.expErr, err)
			}
		})
	}
}

func TestParseConfigOrdering(t *testing.T) {
	doc := `
platform = "p"
arch = "a"
package = "p"

[zeta]
b-key = 2
a-key = 1

[alpha]
only = 3

[empty]
`
	cfg, err := parseConfig([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Sections) != 2 {
		t.Fatalf("expected empty sections to be dropped; got %d sections", len(cfg.Sections))
	}
	if cfg.Sections[0].Name != "alpha" || cfg.Sections[1].Name != "zeta" {
		t.Fatalf("expected sections sorted by name; got %q, %q", cfg.Sections[0].Name, cfg.Sections[1].Name)
	}
	if got := cfg.Sections[1].Constants; got[0].Name != "AKey" || got[1].Name != "BKey" {
		t.Fatalf("expected constants sorted by key; got %+v", got)
	}
}

// The checked-in config.go files must match what the generator produces.
func TestRenderBoards(t *testing.T) {
	inputs, err := filepath.Glob("../../platform/*/platform.toml")
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) == 0 {
		t.Fatal("no board descriptions found")
	}

	for _, input := range inputs {
		t.Run(filepath.Base(filepath.Dir(input)), func(t *testing.T) {
			data, err := os.ReadFile(input)
			if err != nil {
				t.Fatal(err)
			}
			cfg, err := parseConfig(data)
			if err != nil {
				t.Fatal(err)
			}
			got, err := render(cfg, "platform.toml")
			if err != nil {
				t.Fatal(err)
			}

			exp, err := os.ReadFile(filepath.Join(filepath.Dir(input), "config.go"))
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != string(exp) {
				t.Fatalf("config.go is stale; expected:\n%s\ngot:\n%s", exp, got)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	specs := []struct {
		in  uint64
		exp string
	}{
		{0, "0"},
		{255, "255"},
		{256, "0x100"},
		{0xffff000000000000, "0xffff000000000000"},
	}

	for specIndex, spec := range specs {
		if got := formatValue(spec.in); got != spec.exp {
			t.Errorf("[spec %d] expected %q; got %q", specIndex, spec.exp, got)
		}
	}
}
