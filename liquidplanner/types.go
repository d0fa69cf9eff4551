package liquidplanner

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type TaskInput struct {
	Name              string `json:"name"                         validate:"required"`
	Description       string `json:"description,omitempty"`
	ParentID          int    `json:"parent_id,omitempty"          validate:"gte=0"`
	PackageID         int    `json:"package_id,omitempty"         validate:"gte=0"`
	OwnerID           int    `json:"owner_id,omitempty"           validate:"gte=0"`
	ExternalReference string `json:"external_reference,omitempty"`
	IsDone            bool   `json:"is_done,omitempty"`
	DoneOn            string `json:"done_on,omitempty"            validate:"omitempty,lpdate"`
	Promise           string `json:"promise_by,omitempty"         validate:"omitempty,lpdate"`
}

// TrackTimeInput logs work on a task and optionally re-estimates what is
// left. Hours are decimals so that quarter hours survive the round trip.
type TrackTimeInput struct {
	Work                decimal.Decimal  `json:"work"                            validate:"gte=0"`
	MemberID            int              `json:"member_id,omitempty"             validate:"gte=0"`
	ActivityID          int              `json:"activity_id,omitempty"           validate:"gte=0"`
	WorkPerformedOn     string           `json:"work_performed_on,omitempty"     validate:"omitempty,lpdate"`
	LowEffortRemaining  *decimal.Decimal `json:"low_effort_remaining,omitempty"  validate:"omitempty,gte=0"`
	HighEffortRemaining *decimal.Decimal `json:"high_effort_remaining,omitempty" validate:"omitempty,gte=0"`
	IsDone              bool             `json:"is_done,omitempty"`
	Note                string           `json:"comment,omitempty"`
}

// MarshalJSON writes hours as JSON numbers; decimal.Decimal on its own
// marshals to a quoted string.
func (in TrackTimeInput) MarshalJSON() ([]byte, error) {
	type wire struct {
		Work                json.Number  `json:"work"`
		MemberID            int          `json:"member_id,omitempty"`
		ActivityID          int          `json:"activity_id,omitempty"`
		WorkPerformedOn     string       `json:"work_performed_on,omitempty"`
		LowEffortRemaining  *json.Number `json:"low_effort_remaining,omitempty"`
		HighEffortRemaining *json.Number `json:"high_effort_remaining,omitempty"`
		IsDone              bool         `json:"is_done,omitempty"`
		Note                string       `json:"comment,omitempty"`
	}

	return json.Marshal(wire{
		Work:                json.Number(in.Work.String()),
		MemberID:            in.MemberID,
		ActivityID:          in.ActivityID,
		WorkPerformedOn:     in.WorkPerformedOn,
		LowEffortRemaining:  numberOrNil(in.LowEffortRemaining),
		HighEffortRemaining: numberOrNil(in.HighEffortRemaining),
		IsDone:              in.IsDone,
		Note:                in.Note,
	})
}

func numberOrNil(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}

	n := json.Number(d.String())

	return &n
}

type EstimateInput struct {
	Low  string `json:"low"  validate:"required,lpduration"`
	High string `json:"high" validate:"required,lpduration"`
}

type CommentInput struct {
	Comment string `json:"comment" validate:"required"`
}

type NoteInput struct {
	Description string `json:"description" validate:"required"`
}

type LinkInput struct {
	URL         string `json:"url"                   validate:"required,url"`
	Description string `json:"description,omitempty"`
}

type ClientInput struct {
	Name              string `json:"name"               validate:"required"`
	Description       string `json:"description"`
	ExternalReference string `json:"external_reference"`
}

type ProjectInput struct {
	Name              string `json:"name"               validate:"required"`
	ClientID          int    `json:"client_id"          validate:"gte=0"`
	ParentID          int    `json:"parent_id"          validate:"gte=0"`
	Description       string `json:"description"`
	IsDone            bool   `json:"is_done"`
	DoneOn            string `json:"done_on"            validate:"omitempty,lpdate"`
	ExternalReference string `json:"external_reference"`
}

type ActivityInput struct {
	Name        string `json:"name"                  validate:"required"`
	Description string `json:"description,omitempty"`
}
