package hierarchy

// Version is a version label such as "2.0". Version labels are opaque
// strings: resolution compares them for equality only, no ordering between
// labels is implied or required.
type Version string

// IsZero reports whether no version label is set.
func (v Version) IsZero() bool {
	return v == ""
}

// String returns the plain label string.
func (v Version) String() string {
	return string(v)
}
