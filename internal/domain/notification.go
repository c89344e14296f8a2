package domain

import "github.com/google/uuid"

// Email is an outbound HTML message.
type Email struct {
	ToName    string
	ToAddress string
	Subject   string
	HTML      string
}

// Delivery is the outcome of sending one email.
// Err is nil when the transport accepted the message.
type Delivery struct {
	ParticipantID uuid.UUID
	Address       string
	Err           error
}

// DeliveryReport collects the outcome of every send in a fan-out.
type DeliveryReport struct {
	Deliveries []Delivery
}

// Failed returns the deliveries whose send returned an error.
func (r DeliveryReport) Failed() []Delivery {
	var out []Delivery
	for _, d := range r.Deliveries {
		if d.Err != nil {
			out = append(out, d)
		}
	}
	return out
}

// Sent returns how many messages were accepted by the transport.
func (r DeliveryReport) Sent() int {
	return len(r.Deliveries) - len(r.Failed())
}
