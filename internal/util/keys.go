package util

import "strings"

const keyPrefix = "b2"

// StorageKey returns "b2:<ns>:<key>".
func StorageKey(ns, key string) string {
	var sb strings.Builder
	sb.Grow(len(keyPrefix) + len(ns) + len(key) + 2)
	sb.WriteString(keyPrefix)
	sb.WriteByte(':')
	sb.WriteString(ns)
	sb.WriteByte(':')
	sb.WriteString(key)
	return sb.String()
}
