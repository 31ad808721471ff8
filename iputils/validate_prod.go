//go:build !debug_ip_utils

package iputils

// DebugValidate will call Validate on the provided object and panics if any
// errors are returned. This function no-ops unless the debug_ip_utils build
// tag is present.
func DebugValidate(validatable Validatable) {
}

// DebugCheckPow2 will verify that the numerical value passed in is a power of
// two, and panics if it is not. This function no-ops unless the debug_ip_utils
// build tag is present.
func DebugCheckPow2(value uint64, name string) {
}
