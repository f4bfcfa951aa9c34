package outbox

import "encoding/json"

// ActivationEmailPayload is the wire form of a KindActivationEmail message.
type ActivationEmailPayload struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

func (p *ActivationEmailPayload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

func (p *ActivationEmailPayload) Unmarshal(data []byte) error {
	return json.Unmarshal(data, p)
}
