package wireval

import "github.com/wireval/wireval/value"

// IsSequence reports whether m would be written using the ARRAY framing
// rather than the TABLE framing: its keys are exactly the integers
// 1..n, with n its pair count and no other keys. It is exposed at the
// top level so callers building a Mapping can check the classification
// their data will get without reaching into the value package.
func IsSequence(m *value.Mapping) bool {
	return value.IsSequence(m)
}
