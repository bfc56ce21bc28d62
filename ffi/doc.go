// Package ffi replaces the original soundness checker's foreign-function
// boundary — three module-level mutable pointers (hg_0/hg_1/hg_2) shared
// across every call from the host language — with a handle-based Registry.
// Each Create call returns a fresh, independently addressable Handle backed
// by google/uuid rather than a slot in a fixed-size global array, so callers
// embedding this module (a CLI, a test harness, another Go process) do not
// need global mutual exclusion to manage more than one graph at a time.
package ffi
