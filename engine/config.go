package engine

const (
	DefaultBoardSize    = 15
	DefaultMaxDepth     = 4
	DefaultSearchRadius = 2
)

type Config struct {
	BoardSize      int     `json:"board_size"`
	MaxDepth       int     `json:"max_depth"`
	SearchRadius   int     `json:"search_radius"`
	TacticalRoot   bool    `json:"tactical_root"`
	LogSearchStats bool    `json:"log_search_stats"`
	Weights        Weights `json:"weights"`
}

// Weights is the scoring table used by the Evaluator. Half-open pattern
// scores are derived from it: four/2, three/4, two/4.
type Weights struct {
	Win                          int `json:"win"`
	Four                         int `json:"four"`
	Three                        int `json:"three"`
	Two                          int `json:"two"`
	OpenEndBonus                 int `json:"open_end_bonus"`
	CenterBonus                  int `json:"center_bonus"`
	DoubleThreeBonus             int `json:"double_three_bonus"`
	DoubleFourBonus              int `json:"double_four_bonus"`
	OpponentMultiplier           int `json:"opponent_multiplier"`
	OffenseMultiplier            int `json:"offense_multiplier"`
	DefenseMultiplier            int `json:"defense_multiplier"`
	CenterControlRadius          int `json:"center_control_radius"`
	CenterControlMaxBonus        int `json:"center_control_max_bonus"`
	CenterControlDistancePenalty int `json:"center_control_distance_penalty"`
}

func DefaultConfig() Config {
	return Config{
		BoardSize:      DefaultBoardSize,
		MaxDepth:       DefaultMaxDepth,
		SearchRadius:   DefaultSearchRadius,
		TacticalRoot:   true,
		LogSearchStats: false,
		Weights:        DefaultWeights(),
	}
}

func DefaultWeights() Weights {
	return Weights{
		Win:                          100000,
		Four:                         10000,
		Three:                        1000,
		Two:                          100,
		OpenEndBonus:                 5,
		CenterBonus:                  10,
		DoubleThreeBonus:             1500,
		DoubleFourBonus:              5000,
		OpponentMultiplier:           2,
		OffenseMultiplier:            2,
		DefenseMultiplier:            3,
		CenterControlRadius:          2,
		CenterControlMaxBonus:        10,
		CenterControlDistancePenalty: 2,
	}
}

// WithDefaults fills unset fields with defaults.
func (c Config) WithDefaults() Config {
	if c.BoardSize <= 0 {
		c.BoardSize = DefaultBoardSize
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.SearchRadius <= 0 {
		c.SearchRadius = DefaultSearchRadius
	}
	if c.Weights == (Weights{}) {
		c.Weights = DefaultWeights()
	}
	return c
}
