package entity

// Category is a bucket of the attendance spreadsheet.
type Category string

const (
	CategoryPresent Category = "present"
	CategoryLeave   Category = "leave"
	CategoryAMLeave Category = "am_leave"
	CategoryHidden  Category = "hidden"
)

// Categories lists every category in fetch order.
var Categories = []Category{CategoryPresent, CategoryLeave, CategoryAMLeave, CategoryHidden}

// Roster holds the member IDs of each category for one date.
type Roster struct {
	Present []string
	Leave   []string
	AMLeave []string
	Hidden  []string
}

// Set stores ids under the given category.
func (r *Roster) Set(category Category, ids []string) {
	switch category {
	case CategoryPresent:
		r.Present = ids
	case CategoryLeave:
		r.Leave = ids
	case CategoryAMLeave:
		r.AMLeave = ids
	case CategoryHidden:
		r.Hidden = ids
	}
}
