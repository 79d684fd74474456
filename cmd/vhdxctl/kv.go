package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/joshuapare/vhdxkit/vhdx/locator"
)

// applyPairs sets each key=value argument on loc, in argument order.
func applyPairs(loc *locator.Locator, pairs []string) error {
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("invalid entry %q: expected key=value", p)
		}
		loc.Set(key, value)
	}
	return nil
}

// applyLinkage stores id as parent_linkage when id is non-empty.
func applyLinkage(loc *locator.Locator, id string) error {
	if id == "" {
		return nil
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid --linkage %q: %w", id, err)
	}
	loc.SetParentLinkage(u)
	return nil
}
