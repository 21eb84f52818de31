package document

import (
	"fmt"
	"strings"
)

// ValidateFileName checks that name can be used as the base name of a file
// within the target directory.
func ValidateFileName(name string) error {
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid file name %q", name)
	}
	return nil
}
