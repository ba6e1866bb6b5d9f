package calculator

import (
	"fmt"

	"github.com/mmynk/eatnsplit/internal/models"
)

// FriendShare returns the part of the bill not paid by the user.
// Unset when the bill itself is unset.
func FriendShare(bill, paidByUser models.Amount) models.Amount {
	if !bill.IsSet() {
		return models.Unset()
	}
	return models.AmountOf(bill.Value() - paidByUser.Value())
}

// SplitDelta computes the balance change a split bill applies to the friend.
// Based on who paid:
//
//	payer == user:   delta = +(bill - paidByUser)  friend owes the user their share
//	payer == friend: delta = -paidByUser           user owes the friend their share
func SplitDelta(bill, paidByUser models.Amount, payer models.Payer) (int64, error) {
	if bill.IsZero() {
		return 0, fmt.Errorf("bill total cannot be empty or zero")
	}
	if paidByUser.IsZero() {
		return 0, fmt.Errorf("user expense cannot be empty or zero")
	}

	if payer == models.PayerFriend {
		return -paidByUser.Value(), nil
	}
	return FriendShare(bill, paidByUser).Value(), nil
}
