// Package cli implements the numtrait command: inspecting the capability
// matrix, verifying the registration laws, validating the CUE registration
// table and regenerating the per-type registration.
package cli
