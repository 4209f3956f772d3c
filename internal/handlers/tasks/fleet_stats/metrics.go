package fleet_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shipments_by_status",
			Help: "Current number of shipments per lifecycle status",
		},
		[]string{"status"},
	)

	DriverCommittedKg = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "driver_committed_kg",
			Help: "Summed weight of en_route shipments per driver",
		},
		[]string{"driver_id", "driver_name"},
	)

	DriverCapacityKg = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "driver_capacity_kg",
			Help: "Declared capacity per driver",
		},
		[]string{"driver_id", "driver_name"},
	)

	DriverActiveParcels = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "driver_active_parcels",
			Help: "Number of en_route shipments per driver",
		},
		[]string{"driver_id", "driver_name"},
	)
)
