// Package api defines the JSON wire types of the battle HTTP service.
package api

// BattleRequest carries both armies as unit name -> soldier count.
type BattleRequest struct {
	You   map[string]int `json:"you"`
	Enemy map[string]int `json:"enemy"`
}

// Platoon is one unit group on the wire.
type Platoon struct {
	Type     string `json:"type"`
	Soldiers int    `json:"soldiers"`
}

// Engagement is one position of the battle log.
type Engagement struct {
	Position      int     `json:"position"`
	You           Platoon `json:"you"`
	Enemy         Platoon `json:"enemy"`
	YourStrength  int     `json:"your_strength"`
	EnemyStrength int     `json:"enemy_strength"`
	Outcome       string  `json:"outcome"`
	Log           string  `json:"log"`
}

// BattleResponse is returned by POST /api/battle. When Found is false the
// search was exhausted and only the mustered sides are set.
type BattleResponse struct {
	Found             bool         `json:"found"`
	YourSide          []Platoon    `json:"your_side"`
	EnemySide         []Platoon    `json:"enemy_side"`
	Arrangement       []Platoon    `json:"arrangement,omitempty"`
	Summary           string       `json:"summary,omitempty"`
	Engagements       []Engagement `json:"engagements,omitempty"`
	Wins              int          `json:"wins"`
	Draws             int          `json:"draws"`
	Losses            int          `json:"losses"`
	PermutationsTried int          `json:"permutations_tried"`
	Message           string       `json:"message"`
}

// Advantage lists the types one unit type beats.
type Advantage struct {
	Type        string   `json:"type"`
	DisplayName string   `json:"display_name"`
	Beats       []string `json:"beats"`
}

// AdvantagesResponse is returned by GET /api/advantages.
type AdvantagesResponse struct {
	Multiplier int         `json:"multiplier"`
	Advantages []Advantage `json:"advantages"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Side  string `json:"side,omitempty"`
}
