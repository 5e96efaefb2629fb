package plan

import (
	"testing"

	"github.com/katalvlaran/dpdp-core/model"
	"github.com/katalvlaran/dpdp-core/routelist"
	"github.com/stretchr/testify/require"
)

func item(id string, demand float64) model.OrderItem {
	return model.OrderItem{ItemID: id, OrderID: id, Demand: demand}
}

func oneVehiclePlan(capacity float64, carrying []model.OrderItem) *Plan {
	vehicles := []model.Vehicle{{VehicleID: "v1", Index: 0, Capacity: capacity, CarryingItems: carrying}}
	meta := model.NewMetadata(
		[]model.Factory{{FactoryID: "f1", DockNum: 1}, {FactoryID: "f2", DockNum: 1}},
		[][]float64{{0, 1}, {1, 0}},
		[][]float64{{0, 1}, {1, 0}},
	)
	return New(vehicles, meta)
}

func TestCheckCapacity_PickupThenDeliveryStaysWithinBound(t *testing.T) {
	p := oneVehiclePlan(5, nil)
	rl := p.Routes[0]

	pickup := p.Arena.NewStep(routelist.KindPickup, 0, []model.OrderItem{item("i1", 5)})
	delivery := p.Arena.NewStep(routelist.KindDelivery, 1, []model.OrderItem{item("i1", 5)})
	p.Arena.SetPartner(pickup, delivery)
	require.NoError(t, rl.InsertAfter(pickup, rl.Begin))
	require.NoError(t, rl.InsertAfter(delivery, pickup))

	require.True(t, p.CheckCapacity(0))
}

func TestCheckCapacity_OverCapacityFails(t *testing.T) {
	p := oneVehiclePlan(3, nil)
	rl := p.Routes[0]

	pickup := p.Arena.NewStep(routelist.KindPickup, 0, []model.OrderItem{item("i1", 5)})
	require.NoError(t, rl.InsertAfter(pickup, rl.Begin))

	require.False(t, p.CheckCapacity(0))
}

func TestCheckLIFO_ValidNestedPickupDelivery(t *testing.T) {
	p := oneVehiclePlan(10, nil)
	rl := p.Routes[0]

	p1 := p.Arena.NewStep(routelist.KindPickup, 0, []model.OrderItem{item("i1", 1)})
	p2 := p.Arena.NewStep(routelist.KindPickup, 0, []model.OrderItem{item("i2", 1)})
	d2 := p.Arena.NewStep(routelist.KindDelivery, 1, []model.OrderItem{item("i2", 1)})
	d1 := p.Arena.NewStep(routelist.KindDelivery, 1, []model.OrderItem{item("i1", 1)})
	require.NoError(t, rl.InsertAfter(p1, rl.Begin))
	require.NoError(t, rl.InsertAfter(p2, p1))
	require.NoError(t, rl.InsertAfter(d2, p2))
	require.NoError(t, rl.InsertAfter(d1, d2))

	require.True(t, p.CheckLIFO(0))
}

func TestCheckLIFO_OutOfOrderDeliveryFails(t *testing.T) {
	p := oneVehiclePlan(10, nil)
	rl := p.Routes[0]

	p1 := p.Arena.NewStep(routelist.KindPickup, 0, []model.OrderItem{item("i1", 1)})
	p2 := p.Arena.NewStep(routelist.KindPickup, 0, []model.OrderItem{item("i2", 1)})
	d1 := p.Arena.NewStep(routelist.KindDelivery, 1, []model.OrderItem{item("i1", 1)})
	require.NoError(t, rl.InsertAfter(p1, rl.Begin))
	require.NoError(t, rl.InsertAfter(p2, p1))
	require.NoError(t, rl.InsertAfter(d1, p2))

	require.False(t, p.CheckLIFO(0))
}

func TestCheckLIFO_MultiItemPackageInReversedDeliveryOrder(t *testing.T) {
	p := oneVehiclePlan(10, nil)
	rl := p.Routes[0]

	// One package of 3 items pushed [A,B,C] (top=C); the DELIVERY Step
	// carries them already reversed, per how insert/bootstrap build it.
	pickup := p.Arena.NewStep(routelist.KindPickup, 0, []model.OrderItem{item("a", 1), item("b", 1), item("c", 1)})
	delivery := p.Arena.NewStep(routelist.KindDelivery, 1, model.ReverseItems([]model.OrderItem{item("a", 1), item("b", 1), item("c", 1)}))
	require.NoError(t, rl.InsertAfter(pickup, rl.Begin))
	require.NoError(t, rl.InsertAfter(delivery, pickup))

	require.True(t, p.CheckLIFO(0))
}

func TestCheckDestination_MustBeFirstStep(t *testing.T) {
	p := oneVehiclePlan(10, nil)
	rl := p.Routes[0]
	dest := int64(100)
	p.Vehicles[0].Destination = &model.Visit{FactoryIndex: 1, ArriveTime: &dest}

	require.False(t, p.CheckDestination(0))

	h := p.Arena.NewStep(routelist.KindDelivery, 1, []model.OrderItem{item("i1", 1)})
	require.NoError(t, rl.InsertAfter(h, rl.Begin))
	require.True(t, p.CheckDestination(0))
}

func TestCheckAllVehicles_EmptyRoutesSatisfyEverything(t *testing.T) {
	p := oneVehiclePlan(10, nil)
	require.True(t, p.CheckAllVehicles())
}
