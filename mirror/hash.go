package mirror

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// contentHash returns the xxhash64 of s as a hex string. The hash is cheap
// enough to compute per document and stable across runs, which makes it
// useful for spotting upstream content changes in run logs.
func contentHash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
