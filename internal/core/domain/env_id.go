package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// EnvID creates a deterministic identifier for an isolated package environment
// from its package and channel lists. Equal inputs always map to the same ID,
// so concurrent tasks requesting the same environment share one prefix name.
func EnvID(packages, channels []string) string {
	var builder strings.Builder
	for _, p := range packages {
		builder.WriteString(p)
		builder.WriteString(";")
	}
	builder.WriteString("|")
	for _, c := range channels {
		builder.WriteString(c)
		builder.WriteString(";")
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(builder.String()))
}
