package board

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"
)

func TestSelectedPlatform(t *testing.T) {
	if Name == "" {
		t.Fatal("expected the selected platform to have a name")
	}
	if exactlyOnePlatformTag == "" {
		t.Fatal("expected the selected platform to report its build tag")
	}
}

// Every binding must be selected by its tag alone. A GOOS or GOARCH file name
// suffix would hide it on other hosts and let a second board build silently.
func TestBindingsBuildOnEveryHost(t *testing.T) {
	bindings := map[string]string{
		"board_crosvm_virt.go":     "plat_crosvm_virt",
		"board_dummy.go":           "plat_dummy",
		"board_qemuvirtriscv64.go": "plat_qemu_virt_riscv64",
	}

	files, err := filepath.Glob("board_*.go")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		if _, ok := bindings[file]; !ok {
			t.Errorf("binding %s is not covered by this test", file)
		}
	}

	for file, tag := range bindings {
		for _, goarch := range []string{"amd64", "arm64", "riscv64"} {
			ctx := build.Default
			ctx.GOOS, ctx.GOARCH = "linux", goarch
			ctx.BuildTags = []string{tag}

			match, err := ctx.MatchFile(".", file)
			if err != nil {
				t.Fatal(err)
			}
			if !match {
				t.Errorf("%s is not built for linux/%s with -tags %s", file, goarch, tag)
			}
		}

		ctx := build.Default
		ctx.BuildTags = []string{tag}
		if match, _ := ctx.MatchFile(".", "unbound.go"); match {
			t.Errorf("unbound.go must be excluded with -tags %s", tag)
		}
	}
}
