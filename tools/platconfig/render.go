package main

import (
	"bytes"
	"fmt"
	"go/format"
)

// decimalLimit is the smallest value rendered in hex.
const decimalLimit = 256

// render returns the gofmt-ed Go source for cfg. source is the input file
// name quoted in the generated-code header.
func render(cfg *boardConfig, source string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by platconfig from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n\n", cfg.Package)
	fmt.Fprintf(&buf, "const (\n")
	fmt.Fprintf(&buf, "// Platform is the name of the platform.\nPlatform = %q\n\n", cfg.Platform)
	fmt.Fprintf(&buf, "// Arch is the target architecture.\nArch = %q\n", cfg.Arch)
	fmt.Fprintf(&buf, ")\n")

	for _, sec := range cfg.Sections {
		fmt.Fprintf(&buf, "\n// Constants from the [%s] section.\nconst (\n", sec.Name)
		for _, c := range sec.Constants {
			fmt.Fprintf(&buf, "%s = %s\n", c.Name, formatValue(c.Value))
		}
		fmt.Fprintf(&buf, ")\n")
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

func formatValue(v uint64) string {
	if v < decimalLimit {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%#x", v)
}
