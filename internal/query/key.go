// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"strconv"
	"strings"
)

// Key addresses a cache entry: resource name first, then scope ids (active
// vault), then canonical parameter encodings. Two keys are the same entry
// exactly when they are element-wise equal.
type Key []string

// NewKey builds a key from its parts.
func NewKey(parts ...string) Key {
	return append(Key(nil), parts...)
}

// With returns a new key extending k with parts. k is not modified.
func (k Key) With(parts ...string) Key {
	out := make(Key, 0, len(k)+len(parts))
	out = append(out, k...)
	return append(out, parts...)
}

// Equal reports element-wise equality.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix matches the leading elements of k. An
// empty prefix matches every key.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	return k[:len(prefix)].Equal(prefix)
}

// id is the map identity of k. Parts are length-prefixed so no choice of
// part contents can make two different keys collide.
func (k Key) id() string {
	var b strings.Builder
	for _, p := range k {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}

func (k Key) String() string {
	return "[" + strings.Join(k, " ") + "]"
}
