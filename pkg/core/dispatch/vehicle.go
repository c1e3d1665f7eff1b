package dispatch

import "fmt"

// DefaultVehicleCapacity is the seat count assumed for a standard crew
// vehicle when the policy does not specify one
const DefaultVehicleCapacity = 4

// VehicleCheck is the outcome of the vehicle feasibility gate
type VehicleCheck struct {
	Feasible    bool
	Arrangement VehicleArrangement

	// Detail is a human-readable description of the arrangement, or of why
	// the team cannot be transported
	Detail string
}

// CheckVehicleConstraints decides whether a team can be physically
// transported under the policy and classifies the arrangement.
//
// If the designated solo driver is on the team they always occupy their own
// vehicle, so the remaining members must fit in a single crew vehicle. Without
// the solo driver the whole team rides in one or two crew vehicles. Anything
// beyond two crew vehicles is infeasible.
func CheckVehicleConstraints(team []Worker, policy PolicyConfig) VehicleCheck {
	capacity := policy.VehicleCapacity
	if capacity <= 0 {
		capacity = DefaultVehicleCapacity
	}

	soloPresent := false
	others := 0
	for _, member := range team {
		if policy.SoloDriverID != "" && member.ID == policy.SoloDriverID {
			soloPresent = true
		} else {
			others++
		}
	}

	if soloPresent {
		switch {
		case others == 0:
			return VehicleCheck{
				Feasible:    true,
				Arrangement: ArrangementSoloVehicle,
				Detail:      "solo vehicle (single occupant)",
			}
		case others <= capacity:
			return VehicleCheck{
				Feasible:    true,
				Arrangement: ArrangementMixed,
				Detail:      fmt.Sprintf("crew vehicle (%d) + solo vehicle", others),
			}
		default:
			return VehicleCheck{
				Feasible:    false,
				Arrangement: ArrangementInvalid,
				Detail:      fmt.Sprintf("crew vehicle over capacity: %d members (max %d)", others, capacity),
			}
		}
	}

	switch {
	case len(team) <= capacity:
		return VehicleCheck{
			Feasible:    true,
			Arrangement: ArrangementSingleVehicle,
			Detail:      fmt.Sprintf("crew vehicle (%d)", len(team)),
		}
	case len(team) <= capacity*2:
		return VehicleCheck{
			Feasible:    true,
			Arrangement: ArrangementMultiVehicle,
			Detail:      fmt.Sprintf("two crew vehicles (%d)", len(team)),
		}
	default:
		return VehicleCheck{
			Feasible:    false,
			Arrangement: ArrangementInvalid,
			Detail:      fmt.Sprintf("no vehicle arrangement for %d members", len(team)),
		}
	}
}
