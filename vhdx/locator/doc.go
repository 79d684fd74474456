// Package locator reads and writes the VHDX parent locator metadata item.
//
// # Overview
//
// A differencing VHDX records where its parent lives in a parent locator: a
// small key/value table stored in the metadata region. Keys and values are
// UTF-16LE text with explicit byte lengths; there is no terminator and no
// byte-order mark.
//
// # Locator Format
//
// On-disk structure (little-endian):
//
//	[LocatorType GUID: 16 bytes]   B04AEFB7-D19E-4A81-B789-25B8E9445913
//	[Reserved: 2 bytes]            zero
//	[KeyValueCount: 2 bytes]       N
//	[Descriptor 1: 12 bytes]       keyOff u32, valueOff u32, keyLen u16, valueLen u16
//	...
//	[Descriptor N: 12 bytes]
//	[Key/value text]               UTF-16LE
//
// Key and value offsets are relative to the first byte of the locator, not to
// the start of the file or metadata region. Encode and Decode both use that
// reference point, so a locator can be relocated by copying its bytes.
//
// Example (one entry, 78 bytes):
//
//	Offset  Value                   Meaning
//	------  ----------------------  -------------------------
//	0x0000  B7 EF 4A B0 ...         LocatorType
//	0x0010  00 00                   Reserved
//	0x0012  01 00                   KeyValueCount = 1
//	0x0014  20 00 00 00             key at 0x20
//	0x0018  36 00 00 00             value at 0x36
//	0x001C  16 00                   key length 22
//	0x001E  18 00                   value length 24
//	0x0020  "volume_path"           UTF-16LE
//	0x0036  "C:\disk.vhdx"          UTF-16LE
//
// # Reading
//
//	loc, err := locator.Parse(region, itemOffset)
//	if errors.Is(err, locator.ErrFormatMismatch) {
//	    // some other locator type
//	}
//	for _, p := range loc.ParentPaths() {
//	    // try p
//	}
//
// # Writing
//
//	loc := locator.New()
//	loc.SetParentLinkage(parentDataWriteGUID)
//	loc.Set(locator.KeyRelativePath, `..\base.vhdx`)
//
//	out := make([]byte, loc.Size())
//	if err := loc.Encode(out, 0); err != nil {
//	    return err
//	}
//
// Encode validates every limit and the destination size before it writes, so
// a failed Encode leaves the destination untouched.
//
// # Entry Ordering
//
// Entries keep insertion order; decoded entries keep descriptor order. When a
// decoded table repeats a key, the last descriptor's value wins and the key
// keeps its first position.
//
// # Concurrency
//
// A Locator is a plain value with no internal locking. Do not mutate it while
// another goroutine calls Size or Encode on it.
package locator
