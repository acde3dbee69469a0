package dataprep

// Raw passenger columns.
const (
	ColAge      = "Age"
	ColSex      = "Sex"
	ColEmbarked = "Embarked"
	ColCabin    = "Cabin"
	ColSibSp    = "SibSp"
	ColParch    = "Parch"
	ColTicket   = "Ticket"
	ColFare     = "Fare"
	ColName     = "Name"
	ColSurvived = "Survived"
)

// Derived columns.
const (
	ColHasCabin      = "has_Cabin?"
	ColIsChild       = "is_Child?"
	ColFamilyAboard  = "family_aboard"
	ColSharedTicket  = "num_shared_ticket"
	ColPerPersonFare = "per_person_fare"
	ColCabinLevel    = "Cabin_level"
	ColTitleRaw      = "title_raw"
	ColTitleGroup    = "title_group"
)

// MissingSentinel replaces missing Embarked and Cabin values.
const MissingSentinel = "X"

// DefaultChildMaxAge is the oldest age still flagged as a child.
const DefaultChildMaxAge = 15
