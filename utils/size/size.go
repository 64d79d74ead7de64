// Package size contains definitions of common units of data.
package size

import "fmt"

// A Size represents a size of a portion of data expressed in bytes.
type Size int64

// Common units of data.
const (
	Byte Size = 1

	Kibibyte = 1024 * Byte
	Mebibyte = 1024 * Kibibyte
)

// String returns the size using the largest binary unit which represents it
// exactly, for example "512 B" or "8 KiB".
func (s Size) String() string {
	switch {
	case s != 0 && s%Mebibyte == 0:
		return fmt.Sprintf("%d MiB", s/Mebibyte)
	case s != 0 && s%Kibibyte == 0:
		return fmt.Sprintf("%d KiB", s/Kibibyte)
	default:
		return fmt.Sprintf("%d B", int64(s))
	}
}
