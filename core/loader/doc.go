// Package loader provides the feature registration mechanism.
//
// Features implement the Feature interface, get registered with a Manager at
// startup, and have their routes mounted on the Fiber app in registration
// order. This keeps the serve command free of per-feature wiring details.
package loader
