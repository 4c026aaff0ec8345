package request

import (
	"strings"

	"parklot/internal/domain/billing"
	"parklot/internal/usecase"
)

type CheckInRequest struct {
	Plate      string  `json:"plate" binding:"required"`
	Model      string  `json:"model,omitempty"`
	Color      string  `json:"color,omitempty"`
	Stall      string  `json:"stall" binding:"required"`
	TariffKind *string `json:"tariff_kind,omitempty"`
}

func (r CheckInRequest) ToParams() usecase.CheckInParams {
	params := usecase.CheckInParams{
		Plate: r.Plate,
		Model: strings.TrimSpace(r.Model),
		Color: strings.TrimSpace(r.Color),
		Stall: strings.TrimSpace(r.Stall),
	}
	if r.TariffKind != nil {
		kind := billing.TariffKind(strings.ToUpper(strings.TrimSpace(*r.TariffKind)))
		params.TariffKind = &kind
	}
	return params
}
