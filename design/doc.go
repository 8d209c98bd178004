// Package design turns a declarative physics parameter catalog into
// reproducible Latin-hypercube parameter-space designs.
//
// A Design is the sampled plan for one simulation campaign: for a collision
// System (projectile pair + beam energy) and a design Kind (Main trains the
// downstream surrogate model, Validation tests it), the builder
//
//  1. resolves the ordered parameter Space for the system (ranges may depend
//     on beam energy via the injectable Physics tables),
//  2. draws a deterministic maximin Latin-hypercube sample
//     (github.com/katalvlaran/lhsdesign/lhs),
//  3. rescales every column into physical units, honoring optional
//     per-parameter sampling floors,
//  4. attaches derived parameters computed from the sampled ones, and
//  5. names the points "0".."npoints−1" in generation order.
//
// Main and Validation designs use distinct fixed default seeds, so the two
// samples are independent by construction; both seeds can be overridden.
//
// Writer serializes a Design into the two plain tabular manifests consumed by
// the downstream emulator (design-point table and range table) and, when a
// ModuleInputWriter collaborator is attached, hands it one parameter record
// per point for simulation-specific input generation.
//
// All entities are immutable after construction; nothing here mutates shared
// state, so building and writing distinct (system, kind) designs from
// separate goroutines needs no coordination.
package design
