package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyPlate = errors.New("plate cannot be empty")

// Vehicle is identified by its plate. Check-in creates it on first sight;
// nothing in the core ever deletes one.
type Vehicle struct {
	id        uuid.UUID
	plate     string
	model     string
	color     string
	createdAt time.Time
}

func NewVehicle(plate, model, color string) (*Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return nil, ErrEmptyPlate
	}
	return &Vehicle{
		id:    uuid.New(),
		plate: plate,
		model: model,
		color: color,
	}, nil
}

func ReconstructVehicle(id uuid.UUID, plate, model, color string, createdAt time.Time) *Vehicle {
	return &Vehicle{
		id:        id,
		plate:     plate,
		model:     model,
		color:     color,
		createdAt: createdAt,
	}
}

func (v *Vehicle) ID() uuid.UUID        { return v.id }
func (v *Vehicle) Plate() string        { return v.plate }
func (v *Vehicle) Model() string        { return v.model }
func (v *Vehicle) Color() string        { return v.color }
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }
