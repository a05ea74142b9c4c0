package dto

// EventStatsResponse summarizes one event's sales
type EventStatsResponse struct {
	EventID       string  `json:"event_id"`
	Title         string  `json:"title"`
	Capacity      int     `json:"capacity"`
	SoldPlaces    int     `json:"sold_places"`
	OccupancyRate float64 `json:"occupancy_rate"`
	Revenue       int     `json:"revenue"`
	TicketsUsed   int     `json:"tickets_used"`
}

// OrganizerStatsResponse aggregates an organizer's portfolio
type OrganizerStatsResponse struct {
	TotalEvents  int                   `json:"total_events"`
	TotalRevenue int                   `json:"total_revenue"`
	TotalSold    int                   `json:"total_sold"`
	Events       []*EventStatsResponse `json:"events"`
}

// TrendingEventResponse is an event ranked by fill rate
type TrendingEventResponse struct {
	EventID       string  `json:"event_id"`
	Title         string  `json:"title"`
	Location      string  `json:"location"`
	Capacity      int     `json:"capacity"`
	SoldPlaces    int     `json:"sold_places"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// LocationPerformanceResponse ranks a location by average revenue of an
// organizer's finished events
type LocationPerformanceResponse struct {
	Location       string  `json:"location"`
	AverageRevenue float64 `json:"average_revenue"`
}

// MonthPerformanceResponse ranks a start month by average revenue of an
// organizer's finished events
type MonthPerformanceResponse struct {
	Month          int     `json:"month"`
	MonthName      string  `json:"month_name"`
	AverageRevenue float64 `json:"average_revenue"`
}

// RecommendationResponse suggests the most profitable venue and period for
// an organizer's next event
type RecommendationResponse struct {
	BestLocation   *LocationPerformanceResponse `json:"best_location,omitempty"`
	BestMonth      *MonthPerformanceResponse    `json:"best_month,omitempty"`
	Recommendation string                       `json:"recommendation"`
}

// LocationStatsResponse ranks a location by total subscriptions
type LocationStatsResponse struct {
	Location      string `json:"location"`
	Events        int    `json:"events"`
	Subscriptions int    `json:"subscriptions"`
}

// MonthStatsResponse ranks a month by total subscriptions
type MonthStatsResponse struct {
	Month         string `json:"month"` // formatted as YYYY-MM
	Subscriptions int    `json:"subscriptions"`
	Revenue       int    `json:"revenue"`
}
