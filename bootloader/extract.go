// Package bootloader pulls the stage-1 bootloader payload out of a
// compiled bootloader ELF executable.
package bootloader

import (
	"bytes"
	"debug/elf"
	"fmt"

	"github.com/go-errors/errors"
)

// SectionName is the ELF section the bootloader's runtime payload
// lives in.
const SectionName = ".bootloader"

var (
	// ErrMalformedELF is returned when the executable fails
	// structural validation.
	ErrMalformedELF = errors.New("malformed ELF executable")

	// ErrSectionNotFound is returned when the executable has no
	// section with the requested name.
	ErrSectionNotFound = errors.New("ELF section not found")
)

// Extract returns the raw on-disk bytes of the named section, exactly
// as recorded by the section's file-size field. The executable is
// validated structurally before any section lookup so that a truncated
// or crafted buffer never triggers an out-of-bounds read. No
// decompression or relocation is applied.
func Extract(elfBytes []byte, name string) ([]byte, error) {
	f, err := elf.NewFile(bytes.NewReader(elfBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedELF, err)
	}
	defer f.Close()

	size := uint64(len(elfBytes))
	for _, s := range f.Sections {
		if s.Type == elf.SHT_NOBITS {
			continue
		}
		end := s.Offset + s.FileSize
		if end < s.Offset || end > size {
			return nil, fmt.Errorf("%w: section %q exceeds file bounds", ErrMalformedELF, s.Name)
		}
	}

	section := f.Section(name)
	if section == nil {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, name)
	}
	if section.Type == elf.SHT_NOBITS {
		return []byte{}, nil
	}
	return elfBytes[section.Offset : section.Offset+section.FileSize], nil
}

// ExtractPayload returns the bootloader payload section of elfBytes.
func ExtractPayload(elfBytes []byte) ([]byte, error) {
	return Extract(elfBytes, SectionName)
}
