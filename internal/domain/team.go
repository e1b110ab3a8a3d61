package domain

import "time"

// Team is a persisted NBA team record.
type Team struct {
	ID            string
	Name          string
	Location      string
	Conference    string
	Championships int
	CreatedOn     time.Time
}

// TeamFields carries the business fields of a write. A nil field was not
// supplied by the caller. Nulls names the fields the caller explicitly set
// to null.
type TeamFields struct {
	Name          *string `validate:"required,min=1"`
	Location      *string `validate:"required,min=1"`
	Conference    *string `validate:"required,min=1"`
	Championships *int    `validate:"required"`
	Nulls         []string
}

// Empty reports whether no field was supplied.
func (f TeamFields) Empty() bool {
	return len(f.supplied()) == 0 && len(f.Nulls) == 0
}

// supplied lists the struct fields carrying a value.
func (f TeamFields) supplied() []string {
	var out []string
	if f.Name != nil {
		out = append(out, "Name")
	}
	if f.Location != nil {
		out = append(out, "Location")
	}
	if f.Conference != nil {
		out = append(out, "Conference")
	}
	if f.Championships != nil {
		out = append(out, "Championships")
	}
	return out
}

// Apply copies the supplied fields onto team.
func (f TeamFields) Apply(team *Team) {
	if f.Name != nil {
		team.Name = *f.Name
	}
	if f.Location != nil {
		team.Location = *f.Location
	}
	if f.Conference != nil {
		team.Conference = *f.Conference
	}
	if f.Championships != nil {
		team.Championships = *f.Championships
	}
}
