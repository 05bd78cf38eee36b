package main

import (
	"errors"
	"fmt"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// boardConfig is a parsed platform.toml.
type boardConfig struct {
	Platform string
	Arch     string
	Package  string

	// Sections holds one entry per TOML table, sorted by table name.
	Sections []section
}

type section struct {
	Name      string
	Constants []constant
}

type constant struct {
	Key   string
	Name  string
	Value uint64
}

var (
	errMissingKey = errors.New("missing required key")
	errBadValue   = errors.New("value must be a non-negative integer")
)

// initialisms are key words emitted in upper case in constant names.
var initialisms = map[string]bool{
	"cpu":  true,
	"dma":  true,
	"gic":  true,
	"id":   true,
	"io":   true,
	"ipi":  true,
	"irq":  true,
	"mmio": true,
	"pci":  true,
	"psci": true,
	"rtc":  true,
	"smp":  true,
	"uart": true,
}

// parseConfig decodes a platform.toml document.
func parseConfig(data []byte) (*boardConfig, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}

	cfg := &boardConfig{}
	for key, dst := range map[string]*string{
		"platform": &cfg.Platform,
		"arch":     &cfg.Arch,
		"package":  &cfg.Package,
	} {
		v, ok := doc[key]
		if !ok {
			return nil, fmt.Errorf("%w %q", errMissingKey, key)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("key %q: expected a non-empty string", key)
		}
		*dst = s
		delete(doc, key)
	}

	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("key \"package\": %q is not a valid package name", cfg.Package)
	}

	for name, v := range doc {
		table, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unknown top-level key %q", name)
		}

		sec, err := parseSection(name, table)
		if err != nil {
			return nil, err
		}
		if len(sec.Constants) != 0 {
			cfg.Sections = append(cfg.Sections, sec)
		}
	}

	sort.Slice(cfg.Sections, func(i, j int) bool { return cfg.Sections[i].Name < cfg.Sections[j].Name })
	if err := checkUniqueNames(cfg.Sections); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseSection(name string, table map[string]any) (section, error) {
	sec := section{Name: name}
	for key, raw := range table {
		value, err := parseValue(raw)
		if err != nil {
			return sec, fmt.Errorf("[%s] %s: %w", name, key, err)
		}

		constName := constantName(key)
		if !token.IsIdentifier(constName) || !token.IsExported(constName) {
			return sec, fmt.Errorf("[%s] %s: cannot derive an exported Go name", name, key)
		}

		sec.Constants = append(sec.Constants, constant{Key: key, Name: constName, Value: value})
	}

	sort.Slice(sec.Constants, func(i, j int) bool { return sec.Constants[i].Key < sec.Constants[j].Key })
	return sec, nil
}

// parseValue accepts TOML integers and strings holding Go integer literals.
// Strings are needed for values above the int64 range that TOML integers
// cannot express.
func parseValue(raw any) (uint64, error) {
	switch v := raw.(type) {
	case int64:
		if v < 0 {
			return 0, errBadValue
		}
		return uint64(v), nil
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errBadValue, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: got %T", errBadValue, raw)
	}
}

// constantName converts a kebab-case key to an exported Go name, e.g.
// "uart-reg-shift" becomes "UARTRegShift".
func constantName(key string) string {
	var sb strings.Builder
	for _, word := range strings.FieldsFunc(key, func(r rune) bool { return r == '-' || r == '_' }) {
		word = strings.ToLower(word)
		if initialisms[word] {
			sb.WriteString(strings.ToUpper(word))
			continue
		}
		sb.WriteString(strings.ToUpper(word[:1]))
		sb.WriteString(word[1:])
	}
	return sb.String()
}

func checkUniqueNames(sections []section) error {
	seen := map[string]string{
		"Platform": "platform",
		"Arch":     "arch",
	}
	for _, sec := range sections {
		for _, c := range sec.Constants {
			where := fmt.Sprintf("[%s] %s", sec.Name, c.Key)
			if prev, dup := seen[c.Name]; dup {
				return fmt.Errorf("%s and %s both map to %s", prev, where, c.Name)
			}
			seen[c.Name] = where
		}
	}
	return nil
}
