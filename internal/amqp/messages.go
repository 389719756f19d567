package amqp

import "encoding/json"

// SmsEvent is one inbound SMS delivered over the live feed. Timestamp is
// epoch milliseconds; zero means the receipt time was unavailable and the
// consumer should substitute its own clock. Sender is carried as event
// metadata only; classification does not use it.
type SmsEvent struct {
	Body      string `json:"body"`
	Sender    string `json:"sender,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

func (m *SmsEvent) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func SmsEventFromJSON(data []byte) (*SmsEvent, error) {
	var msg SmsEvent
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
