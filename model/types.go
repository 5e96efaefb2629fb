// Package model defines the immutable boundary records shared by every
// component of the dispatch core: order items, factories, vehicles and
// visits. All hot-path code elsewhere in this module addresses factories
// and vehicles by their integer Index, assigned once by a stable
// lexicographic sort of their string IDs (see NewMetadata and SortVehicles);
// string IDs are kept only for round-trip at the external boundary.
package model

import "sort"

// OrderItem is an immutable unit of cargo belonging to one order. All items
// of one OrderID share PickupFactory, DeliveryFactory and OrderID.
type OrderItem struct {
	ItemID                  string
	OrderID                 string
	Demand                  float64
	PickupFactory           int
	DeliveryFactory         int
	CommittedCompletionTime int64 // epoch seconds
	LoadTime                int64 // seconds
	UnloadTime              int64 // seconds
}

// Factory is an immutable docking location. Index is assigned by sorting
// FactoryID lexicographically; it is the only form other components use.
type Factory struct {
	FactoryID string
	DockNum   int
	Index     int
}

// Visit is one factory stop: the boundary form of a planned route entry.
// Items of one OrderID appear contiguously; DeliveryItems for an OrderID
// are the reverse of PickupItems for that OrderID (LIFO unload order).
type Visit struct {
	FactoryIndex  int
	PickupItems   []OrderItem
	DeliveryItems []OrderItem
	ArriveTime    *int64
	LeaveTime     *int64
}

// Vehicle is the fleet-state snapshot for one vehicle. CarryingItems is
// ordered bottom-first (the order in which items were loaded).
type Vehicle struct {
	VehicleID                 string
	Index                     int
	Capacity                  float64
	CurrentFactory            *int // nil if en route
	LeaveTimeAtCurrentFactory int64
	GPSUpdateTime             int64
	Destination               *Visit
	CarryingItems             []OrderItem
	PlannedRoute              []Visit
}

// Metadata is the static, round-immutable reference data: sorted factory
// list, and the distance/travel-time matrices indexed by Factory.Index.
type Metadata struct {
	Factories   []Factory
	DistanceMtx [][]float64
	TimeMtx     [][]float64
}

// Distance returns the kilometers between two factory indices.
func (m *Metadata) Distance(from, to int) float64 {
	return m.DistanceMtx[from][to]
}

// TravelTime returns the seconds of travel between two factory indices.
func (m *Metadata) TravelTime(from, to int) int64 {
	return int64(m.TimeMtx[from][to])
}

// NewMetadata sorts factories lexicographically by FactoryID, assigns
// Index in that order, and pairs the result with the supplied matrices.
// The matrices are assumed already indexed consistently with the sort
// (callers typically build them from the same sorted order).
func NewMetadata(factories []Factory, distanceMtx, timeMtx [][]float64) *Metadata {
	sorted := make([]Factory, len(factories))
	copy(sorted, factories)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FactoryID < sorted[j].FactoryID })
	for i := range sorted {
		sorted[i].Index = i
	}
	return &Metadata{Factories: sorted, DistanceMtx: distanceMtx, TimeMtx: timeMtx}
}

// FactoryIndexByID builds the string-id to integer-index lookup for use at
// the external boundary. No package in this module calls it.
func FactoryIndexByID(factories []Factory) map[string]int {
	out := make(map[string]int, len(factories))
	for _, f := range factories {
		out[f.FactoryID] = f.Index
	}
	return out
}

// SortVehicles orders vehicles lexicographically by VehicleID and assigns
// Index in that order, mirroring NewMetadata's treatment of factories.
func SortVehicles(vehicles []Vehicle) []Vehicle {
	sorted := make([]Vehicle, len(vehicles))
	copy(sorted, vehicles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].VehicleID < sorted[j].VehicleID })
	for i := range sorted {
		sorted[i].Index = i
	}
	return sorted
}

// TotalDemand sums the Demand of a list of items. Used by the capacity
// constraint check.
func TotalDemand(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Demand
	}
	return total
}

// ReverseItems returns a new slice holding items in reverse order, used to
// derive a DELIVERY Step's item list from its partner PICKUP's.
func ReverseItems(items []OrderItem) []OrderItem {
	out := make([]OrderItem, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}
