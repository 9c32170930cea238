// Package testutils provides fixture builders shared by tests.
package testutils

import (
	"bytes"
	"encoding/binary"
)

const (
	elfHeaderSize       = 64
	sectionHeaderSize   = 64
	sectionTypeProgbits = 1
	sectionTypeStrtab   = 3
	shstrtabSectionName = ".shstrtab"
)

// ELFSection describes a named section to place into a fixture ELF
// executable.
type ELFSection struct {
	Name string
	Data []byte
}

// elf64Header mirrors the fields following e_ident in an ELF64 header.
type elf64Header struct {
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint64
	Phoff     uint64
	Shoff     uint64
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// elf64SectionHeader mirrors an ELF64 section header table entry.
type elf64SectionHeader struct {
	Name      uint32
	Type      uint32
	Flags     uint64
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

// BuildELF assembles a minimal but structurally valid 64-bit
// little-endian ELF executable carrying the given sections, suitable as
// bootloader fixture. The section header table holds a null entry, one
// entry per given section and a trailing .shstrtab entry.
func BuildELF(sections ...ELFSection) []byte {
	// section name string table; index 0 is the empty name
	strtab := []byte{0}
	nameOffsets := make([]uint32, len(sections))
	for i, s := range sections {
		nameOffsets[i] = uint32(len(strtab))
		strtab = append(strtab, s.Name...)
		strtab = append(strtab, 0)
	}
	strtabNameOffset := uint32(len(strtab))
	strtab = append(strtab, shstrtabSectionName...)
	strtab = append(strtab, 0)

	offset := uint64(elfHeaderSize)
	dataOffsets := make([]uint64, len(sections))
	for i, s := range sections {
		dataOffsets[i] = offset
		offset += uint64(len(s.Data))
	}
	strtabOffset := offset
	offset += uint64(len(strtab))
	// align the section header table
	shoff := (offset + 7) &^ 7
	shnum := uint16(len(sections) + 2)

	buf := new(bytes.Buffer)
	buf.Write([]byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	binary.Write(buf, binary.LittleEndian, elf64Header{
		Type:      2,    // ET_EXEC
		Machine:   0x3e, // EM_X86_64
		Version:   1,
		Shoff:     shoff,
		Ehsize:    elfHeaderSize,
		Shentsize: sectionHeaderSize,
		Shnum:     shnum,
		Shstrndx:  shnum - 1,
	})
	for _, s := range sections {
		buf.Write(s.Data)
	}
	buf.Write(strtab)
	buf.Write(make([]byte, shoff-offset))

	// null section entry
	binary.Write(buf, binary.LittleEndian, elf64SectionHeader{})
	for i, s := range sections {
		binary.Write(buf, binary.LittleEndian, elf64SectionHeader{
			Name:      nameOffsets[i],
			Type:      sectionTypeProgbits,
			Offset:    dataOffsets[i],
			Size:      uint64(len(s.Data)),
			Addralign: 1,
		})
	}
	binary.Write(buf, binary.LittleEndian, elf64SectionHeader{
		Name:      strtabNameOffset,
		Type:      sectionTypeStrtab,
		Offset:    strtabOffset,
		Size:      uint64(len(strtab)),
		Addralign: 1,
	})

	return buf.Bytes()
}
