package lot

// Occupancy derives every capacity fact from the pair (open tickets,
// configured total). Free clamps at zero so an over-admitted lot never
// reports negative availability.
type Occupancy struct {
	occupied int32
	total    int32
}

func NewOccupancy(occupied, total int32) Occupancy {
	return Occupancy{occupied: occupied, total: total}
}

func (o Occupancy) Occupied() int32 {
	return o.occupied
}

func (o Occupancy) Total() int32 {
	return o.total
}

func (o Occupancy) Free() int32 {
	free := o.total - o.occupied
	if free < 0 {
		return 0
	}
	return free
}

func (o Occupancy) Percentage() float64 {
	if o.total == 0 {
		return 0
	}
	return float64(o.occupied) / float64(o.total) * 100.0
}

func (o Occupancy) IsFull() bool {
	return o.occupied >= o.total
}
