package models

// Payer identifies who paid the bill being split.
type Payer int

const (
	PayerUser Payer = iota
	PayerFriend
)

// Toggle returns the other payer.
func (p Payer) Toggle() Payer {
	if p == PayerUser {
		return PayerFriend
	}
	return PayerUser
}

func (p Payer) String() string {
	if p == PayerFriend {
		return "friend"
	}
	return "user"
}
