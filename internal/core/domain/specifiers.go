package domain

import "strings"

// specifierReplacer condenses version-specifier punctuation into short
// alphabetic codes. Pattern order matters: "~=" must be tried before "=" so a
// compatible-release operator is not split into two rules. None of the
// replacement outputs re-match a pattern, so a single pass is equivalent to
// applying the rules left-to-right.
var specifierReplacer = strings.NewReplacer(
	".", "",
	",", "",
	"<", "L",
	">", "G",
	"~=", "C",
	"=", "E",
	"!", "N",
)

// CondenseSpecifiers rewrites a raw version-specifier string into a compact
// form safe for use in file and environment names, e.g.
// "py3.7_np>=1.15.0" becomes "py37_npGE1150".
func CondenseSpecifiers(raw string) string {
	return specifierReplacer.Replace(raw)
}
