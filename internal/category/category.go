// Package category owns the canonical expense-category vocabulary and the
// normalization layer that reconciles free-text or AI-suggested labels
// against it. All classification paths in the application ultimately resolve
// to one canonical label, or to a member of a caller-supplied allowed set.
package category

// Other is the universal safe fallback category. It is always the last
// canonical label and is never absent from the canonical set.
const Other = "その他"

// Canonical is the ordered list of domain category labels. Order matters:
// pickAvailable walks it front to back when the preferred label is not in a
// caller's allowed set.
var Canonical = []string{
	"食費",
	"日用品",
	"交通費",
	"娯楽",
	"医療費",
	"衣服",
	"教育",
	"水道光熱費",
	"通信費",
	"住居費",
	"保険",
	"税金",
	"美容",
	"サブスク",
	"交際費",
	"旅行",
	"ペット",
	"投資",
	Other,
}

// IsCanonical reports whether name is a canonical label.
func IsCanonical(name string) bool {
	for _, c := range Canonical {
		if c == name {
			return true
		}
	}
	return false
}

// DefaultSet returns a fresh copy of the canonical labels, used when a
// caller's category source is unavailable.
func DefaultSet() []string {
	out := make([]string, len(Canonical))
	copy(out, Canonical)
	return out
}

// pickAvailable resolves a target label against an optional allowed set.
// With no allowed set the target passes through unchanged. Otherwise the
// result is guaranteed to be a member of the allowed set: the target itself
// when present, else the first canonical label present, else the allowed
// set's first element. It never fails.
func pickAvailable(target string, allowed []string) string {
	if len(allowed) == 0 {
		return target
	}
	for _, a := range allowed {
		if a == target {
			return target
		}
	}
	for _, c := range Canonical {
		for _, a := range allowed {
			if a == c {
				return c
			}
		}
	}
	return allowed[0]
}
