package server

import (
	"encoding/json"
	"time"
)

// Message is the envelope for everything the server sends
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server

// ActionRequest is the only message a client sends
type ActionRequest struct {
	Action string `json:"action"`
}

// Server → Client

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StateData is a full snapshot of the player's table
type StateData struct {
	Session     string       `json:"session"`
	Phase       string       `json:"phase"`
	Round       int          `json:"round"`
	Dealer      DealerState  `json:"dealer"`
	Hands       []HandState  `json:"hands"`
	Bankroll    int          `json:"bankroll"`
	TotalBet    int          `json:"totalBet"`
	Actions     ActionsState `json:"actions"`
	Advisor     bool         `json:"advisor"`
	Advice      *AdviceState `json:"advice,omitempty"`
	Stats       StatsState   `json:"stats"`
	Message     string       `json:"message"`
	Log         []string     `json:"log"`
	DealDelayMS int          `json:"dealDelayMs"`
}

type DealerState struct {
	Cards    []string `json:"cards"` // ASCII glyphs, hole card face down until revealed
	Score    int      `json:"score"`
	Revealed bool     `json:"revealed"`
}

type HandState struct {
	Cards   []string `json:"cards"`
	Score   int      `json:"score"`
	Result  string   `json:"result,omitempty"`
	Bet     int      `json:"bet"`
	Active  bool     `json:"active"`
	Doubled bool     `json:"doubled"`
}

// ActionsState says which buttons are enabled
type ActionsState struct {
	Deal   bool `json:"deal"`
	Hit    bool `json:"hit"`
	Stand  bool `json:"stand"`
	Double bool `json:"double"`
	Split  bool `json:"split"`
}

type AdviceState struct {
	Action      string `json:"action"`
	Label       string `json:"label"`
	Reason      string `json:"reason"`
	Recommended string `json:"recommended"` // the button to highlight
	BustChance  int    `json:"bustChance"`
}

type StatsState struct {
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Pushes     int `json:"pushes"`
	Blackjacks int `json:"blackjacks"`
	WinRate    int `json:"winRate"`
}
