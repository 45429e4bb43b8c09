package domain

// SortCriterion selects the ordering of a ranked listing.
type SortCriterion string

const (
	SortDistanceAsc SortCriterion = "distance-asc"
	SortRatingDesc  SortCriterion = "rating-desc"
	SortRatingAsc   SortCriterion = "rating-asc"
	SortNameAsc     SortCriterion = "name-asc"
	SortNameDesc    SortCriterion = "name-desc"
)

// DefaultSort is applied when the caller does not pick a criterion, and is
// the fallback the UI returns to while a position request is in flight.
const DefaultSort = SortRatingDesc

// ParseSortCriterion maps a query value onto a criterion. Empty input
// yields the default; unknown values are rejected.
func ParseSortCriterion(s string) (SortCriterion, bool) {
	switch SortCriterion(s) {
	case "":
		return DefaultSort, true
	case SortDistanceAsc, SortRatingDesc, SortRatingAsc, SortNameAsc, SortNameDesc:
		return SortCriterion(s), true
	}
	return "", false
}

// RequiresPosition reports whether the criterion needs a resolved user
// position to be meaningful.
func (s SortCriterion) RequiresPosition() bool {
	return s == SortDistanceAsc
}
