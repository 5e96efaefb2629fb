// Package dpdpcore implements a single round of dynamic pickup-and-delivery
// dispatch: reconstructing each vehicle's already-committed route prefix,
// constructively inserting newly arrived orders, and improving the result
// with local search before the round is committed.
//
// The work is organized under subpackages:
//
//	model/       — boundary records: orders, factories, vehicles, visits
//	routelist/   — shared-arena doubly-linked route representation
//	plan/        — per-round solution plus feasibility checks
//	evaluator/   — discrete-event simulation and objective scoring
//	insert/      — constructive insertion of unallocated orders
//	localsearch/ — relocation/exchange neighborhoods over an existing plan
//	bootstrap/   — replay of a vehicle's committed route into a fresh Plan
//	dispatch/    — Config and Round, the package's single entry point
package dpdpcore
