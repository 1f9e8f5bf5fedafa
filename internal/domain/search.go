package domain

type SearchHit struct {
	ID      int64   `json:"id" mapstructure:"id"`
	Title   string  `json:"title" mapstructure:"title"`
	Type    string  `json:"type" mapstructure:"type"`
	Snippet *string `json:"snippet" mapstructure:"snippet"`
	GroupID int64   `json:"groupId" mapstructure:"group_id"`
}

type SearchResult struct {
	Groups []SearchHit `json:"groups"`
	Events []SearchHit `json:"events"`
}
