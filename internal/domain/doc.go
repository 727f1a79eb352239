// Package domain contains the core business entities and their invariants.
// It represents the heart of the system, independent of any specific
// infrastructure or delivery mechanism.
package domain
