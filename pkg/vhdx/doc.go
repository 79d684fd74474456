// Package vhdx provides file-level helpers for VHDX parent locators.
//
// The locator codec itself lives in vhdx/locator and works on byte slices.
// This package adds the file plumbing around it: reading a locator at a known
// offset without loading the whole image, rewriting one in place, and writing
// a standalone locator file.
//
// Locating the metadata item inside the image (region table, metadata table)
// is the caller's job; every function here takes the absolute file offset of
// the locator.
//
//	loc, err := vhdx.ReadLocator("child.avhdx", itemOff, nil)
//	if err != nil {
//	    return err
//	}
//	loc.Set(locator.KeyRelativePath, `..\moved\base.vhdx`)
//	err = vhdx.WriteLocator("child.avhdx", itemOff, itemLen, loc, nil)
package vhdx
