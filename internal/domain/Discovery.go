package domain

type DiscoveryRequest struct {
	UserID string `json:"user_id"`
}

type DiscoveryResult struct {
	Accounts         []*AdAccount `json:"accounts"`
	AccessibleCount  int          `json:"accessible_count"`
	PlaceholderCount int          `json:"placeholder_count"`
	ExpandedChildren bool         `json:"expanded_children"`
	LinkedAccountID  string       `json:"linked_account_id,omitempty"`
	AggregatorID     string       `json:"aggregator_id,omitempty"`
}
