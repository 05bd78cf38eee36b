package main

import (
	"debug/elf"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const redirectTableSection = ".goredirectstbl"

func elfRedirectTableOffset(imgFile string) (offset, size uint64, err error) {
	f, err := elf.Open(imgFile)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	redirectsSection := f.Section(redirectTableSection)
	if redirectsSection == nil {
		return 0, 0, fmt.Errorf("%s: missing %s section", imgFile, redirectTableSection)
	}

	return redirectsSection.Offset, redirectsSection.Size, nil
}

// elfWriteRedirectTable writes a (srcVMA, dstVMA) pair per redirect into the
// table section of imgFile.
func elfWriteRedirectTable(redirects []*redirect, imgFile string) error {
	offset, size, err := elfRedirectTableOffset(imgFile)
	if err != nil {
		return err
	}
	if need := uint64(len(redirects)) * 16; need > size {
		return fmt.Errorf("%s: %s holds %d bytes; %d redirects need %d", imgFile, redirectTableSection, size, len(redirects), need)
	}

	f, err := os.OpenFile(imgFile, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.Seek(int64(offset), io.SeekStart); err != nil {
		return err
	}

	for _, redirect := range redirects {
		if err = binary.Write(f, binary.LittleEndian, [2]uint64{redirect.srcVMA, redirect.dstVMA}); err != nil {
			return err
		}
	}

	return f.Close()
}

func elfResolveRedirectSymbols(redirects []*redirect, imgFile string) error {
	f, err := elf.Open(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	symbols, err := f.Symbols()
	if err != nil {
		return err
	}

	return resolveSymbols(redirects, symbols, imgFile)
}

func resolveSymbols(redirects []*redirect, symbols []elf.Symbol, imgFile string) error {
	for _, redirect := range redirects {
		for _, symbol := range symbols {
			if symbol.Name == redirect.src {
				redirect.srcVMA = symbol.Value
			}
			if symbol.Name == redirect.dst {
				redirect.dstVMA = symbol.Value
			}
		}

		switch {
		case redirect.srcVMA == 0:
			return fmt.Errorf("%s: could not locate address of %q", imgFile, redirect.src)
		case redirect.dstVMA == 0:
			return fmt.Errorf("%s: could not locate address of %q", imgFile, redirect.dst)
		}
	}

	return nil
}
