package model

// Member is one roster entry. Only TwitchID takes part in aggregation.
type Member struct {
	TwitchID string `yaml:"twitchId"`
	Name     string `yaml:"name,omitempty"`
	Role     string `yaml:"role,omitempty"`
}
