// Package hcl loads simulation settings from an HCL file. A file holds at
// most one `simulation` block whose attributes override the built-in
// defaults:
//
//	simulation {
//	  games            = 500
//	  players          = 6
//	  rounds           = default.rounds * 2
//	  doubles_for_jail = max(2, default.doubles_for_jail - 1)
//	}
//
// Expressions may refer to the defaults through the `default` object and use
// the min, max, floor and ceil functions.
package hcl
