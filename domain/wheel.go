package domain

// WheelSector is one slot group on the wheel: Count copies of Label occupy
// the wheel, each drawn with equal probability.
type WheelSector struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// Reward describes the prize behind a sector label. Amount > 0 means a star
// reward that must be claimed; Amount == 0 means a collectible gift.
type Reward struct {
	Emoji  string `json:"emoji"`
	Rarity string `json:"rarity"`
	Amount int    `json:"amount"`
}

// GameConfig is the full, immutable configuration of the game engine. It is
// built once at startup and passed in explicitly.
type GameConfig struct {
	Sectors      []WheelSector
	Rewards      map[string]Reward
	GifURLs      []string
	SpinCost     int
	StartBalance int
}

func DefaultGameConfig() GameConfig {
	return GameConfig{
		Sectors: []WheelSector{
			{Label: "2x", Count: 30, Color: "#06b6d4"},
			{Label: "3x", Count: 12, Color: "#f59e0b"},
			{Label: "NFT", Count: 5, Color: "#8b5cf6"},
			{Label: "Secret NFT", Count: 1, Color: "#ef4444"},
		},
		Rewards: map[string]Reward{
			"2x":         {Emoji: "2x", Rarity: "common", Amount: 250},
			"3x":         {Emoji: "3x", Rarity: "rare", Amount: 375},
			"NFT":        {Emoji: "🎨", Rarity: "epic"},
			"Secret NFT": {Emoji: "💎", Rarity: "legendary"},
		},
		GifURLs: []string{
			"gifts/B-Day Candle.gif",
			"gifts/Evil Eye.gif",
			"gifts/Handing Star.gif",
			"gifts/Jelly Bunny.gif",
			"gifts/Jester Hat.gif",
			"gifts/Jolly Chimp.gif",
			"gifts/Lol Pop.gif",
			"gifts/Pet Snake.gif",
			"gifts/Santa Hat.gif",
			"gifts/Snoop Cigar.gif",
			"gifts/Star Notepad.gif",
			"gifts/Toy Bear.gif",
		},
		SpinCost:     125,
		StartBalance: 1000,
	}
}
