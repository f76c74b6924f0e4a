package domain

import "time"

// Prestation represents a bookable service (haircut, shave, ...).
// An empty AllowedStaffIDs set means every staff member may perform it.
type Prestation struct {
	ID              int64
	Title           string
	Description     string
	PriceLabel      string // free-text: "20€", "dès 120€", ...
	DurationMinutes int
	AllowedStaffIDs []int64
	Category        string
	Position        int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveDuration returns the duration used for slot planning.
// A prestation without a usable duration takes the default block.
func (p *Prestation) EffectiveDuration() int {
	if p.DurationMinutes > 0 {
		return p.DurationMinutes
	}
	return DefaultDurationMinutes
}

// AllowsStaff returns true if the staff member may perform this prestation
func (p *Prestation) AllowsStaff(staffID int64) bool {
	if len(p.AllowedStaffIDs) == 0 {
		return true
	}
	for _, id := range p.AllowedStaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// EligibleStaff filters the full staff list down to members allowed to
// perform this prestation
func (p *Prestation) EligibleStaff(staff []StaffMember) []StaffMember {
	if len(p.AllowedStaffIDs) == 0 {
		return staff
	}
	eligible := make([]StaffMember, 0, len(staff))
	for _, member := range staff {
		if p.AllowsStaff(member.ID) {
			eligible = append(eligible, member)
		}
	}
	return eligible
}
