package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects empty names and names carrying path separators
// or dots, which could otherwise escape the asset directory or swap extensions.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
