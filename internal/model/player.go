package model

type Player struct {
	ID    string    `json:"id"`
	Color GameColor `json:"color"`
}

// Players are the two seats of a game. An empty seat is nil.
type Players struct {
	White *Player `json:"white"`
	Black *Player `json:"black"`
}

func (p Players) ColorOf(playerID string) (GameColor, bool) {
	if p.White != nil && p.White.ID == playerID {
		return White, true
	}
	if p.Black != nil && p.Black.ID == playerID {
		return Black, true
	}
	return White, false
}

// Seat gives playerID the first free seat, white first. A player already
// seated keeps their color.
func (p *Players) Seat(playerID string) (GameColor, bool) {
	if color, ok := p.ColorOf(playerID); ok {
		return color, true
	}
	if p.White == nil {
		p.White = &Player{ID: playerID, Color: White}
		return White, true
	}
	if p.Black == nil {
		p.Black = &Player{ID: playerID, Color: Black}
		return Black, true
	}
	return White, false
}

func (p Players) HasFreeSeat() bool {
	return p.White == nil || p.Black == nil
}
