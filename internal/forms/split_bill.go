package forms

import (
	"github.com/mmynk/eatnsplit/internal/calculator"
	"github.com/mmynk/eatnsplit/internal/models"
)

// SplitBillDraft is the split-bill form's local state.
type SplitBillDraft struct {
	bill       models.Amount
	paidByUser models.Amount
	payer      models.Payer
}

// NewSplitBillDraft creates an empty draft with the user as payer.
func NewSplitBillDraft() *SplitBillDraft {
	return &SplitBillDraft{}
}

func (d *SplitBillDraft) Bill() models.Amount       { return d.bill }
func (d *SplitBillDraft) PaidByUser() models.Amount { return d.paidByUser }
func (d *SplitBillDraft) Payer() models.Payer       { return d.payer }

// PaidByFriend is derived: bill minus the user's expense, unset while the bill is unset.
func (d *SplitBillDraft) PaidByFriend() models.Amount {
	return calculator.FriendShare(d.bill, d.paidByUser)
}

// SetBill replaces the bill total.
func (d *SplitBillDraft) SetBill(a models.Amount) {
	d.bill = a
}

// SetPaidByUser replaces the user's expense unless it exceeds the bill,
// in which case the edit is rejected and false returned.
func (d *SplitBillDraft) SetPaidByUser(a models.Amount) bool {
	if a.Value() > d.bill.Value() {
		return false
	}
	d.paidByUser = a
	return true
}

// SetPayer selects who paid.
func (d *SplitBillDraft) SetPayer(p models.Payer) {
	d.payer = p
}

// TogglePayer switches between the user and the friend.
func (d *SplitBillDraft) TogglePayer() {
	d.payer = d.payer.Toggle()
}

// Reset clears the draft.
func (d *SplitBillDraft) Reset() {
	*d = SplitBillDraft{}
}

// Submit returns the balance delta for the selected friend.
// Returns false if the bill or the user's expense is unset or zero.
func (d *SplitBillDraft) Submit() (int64, bool) {
	delta, err := calculator.SplitDelta(d.bill, d.paidByUser, d.payer)
	if err != nil {
		return 0, false
	}
	return delta, true
}
