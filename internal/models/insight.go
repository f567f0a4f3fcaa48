package models

// InsightUrgency is the urgency level of a recommendation, in the locale the
// storefront uses.
type InsightUrgency string

const (
	UrgencyHigh   InsightUrgency = "Alta"
	UrgencyMedium InsightUrgency = "Media"
	UrgencyLow    InsightUrgency = "Baja"
)

// Valid reports whether the urgency is one of the three known levels.
func (u InsightUrgency) Valid() bool {
	return u == UrgencyHigh || u == UrgencyMedium || u == UrgencyLow
}

// InventoryInsight is one strategic recommendation produced by the
// generative model from a catalog snapshot.
type InventoryInsight struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Urgency     InsightUrgency `json:"urgency"`
}
