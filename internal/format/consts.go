// Package format houses the low-level layout of VHDX metadata items. It keeps
// offsets, sizes, and primitive codecs in one place so the public packages can
// stay focused on the table semantics.
package format

// Parent locator header. Offsets are relative to the first byte of the
// locator, which is also the reference point for every key/value offset
// stored in the descriptor slots.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------
//	 0x000   16   LocatorType GUID (mixed-endian, see GUID)
//	 0x010    2   Reserved, written as zero
//	 0x012    2   KeyValueCount
//	 0x014  12*N  Key/value descriptor slots
//	   ...    -   UTF-16LE key and value text
const (
	LocatorTypeOffset     = 0x00
	LocatorTypeLen        = GUIDSize
	LocatorReservedOffset = 0x10
	LocatorCountOffset    = 0x12
	LocatorHeaderSize     = 0x14
)

// Key/value descriptor slot (VHDX_PARENT_LOCATOR_ENTRY), relative to the
// start of the slot.
const (
	DescKeyOffsetField   = 0x00 // UINT32 key offset
	DescValueOffsetField = 0x04 // UINT32 value offset
	DescKeyLengthField   = 0x08 // UINT16 key length in bytes
	DescValueLengthField = 0x0A // UINT16 value length in bytes
	DescriptorSize       = 0x0C
)

const (
	// MaxEntries is the largest count the 16-bit KeyValueCount can hold.
	MaxEntries = 0xFFFF

	// MaxTextBytes is the largest key or value byte length a descriptor can hold.
	MaxTextBytes = 0xFFFF

	// UTF16UnitSize is the width of one UTF-16 code unit.
	UTF16UnitSize = 2
)

// LocatorTypeVHDX is the on-disk byte form of the VHDX parent locator type
// GUID B04AEFB7-D19E-4A81-B789-25B8E9445913.
const LocatorTypeVHDX = "\xB7\xEF\x4A\xB0\x9E\xD1\x81\x4A\xB7\x89\x25\xB8\xE9\x44\x59\x13"

// LocatorTypeVHDXString is the canonical text form of LocatorTypeVHDX.
const LocatorTypeVHDXString = "B04AEFB7-D19E-4A81-B789-25B8E9445913"
