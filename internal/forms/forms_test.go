package forms

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mmynk/eatnsplit/internal/models"
)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestAddFriendDraft_Submit(t *testing.T) {
	tests := []struct {
		name     string
		draft    AddFriendDraft
		wantOK   bool
		wantName string
		wantImg  string
	}{
		{
			name:     "valid name and image",
			draft:    AddFriendDraft{Name: "Dana", Image: models.PlaceholderImage},
			wantOK:   true,
			wantName: "Dana",
			wantImg:  models.PlaceholderImage + "?=id-1",
		},
		{
			name:     "name kept as typed",
			draft:    AddFriendDraft{Name: "  Dana ", Image: models.PlaceholderImage},
			wantOK:   true,
			wantName: "  Dana ",
			wantImg:  models.PlaceholderImage + "?=id-1",
		},
		{
			name:     "whitespace name accepted",
			draft:    AddFriendDraft{Name: "   ", Image: models.PlaceholderImage},
			wantOK:   true,
			wantName: "   ",
			wantImg:  models.PlaceholderImage + "?=id-1",
		},
		{
			name:   "empty name rejected",
			draft:  AddFriendDraft{Name: "", Image: models.PlaceholderImage},
			wantOK: false,
		},
		{
			name:   "empty image rejected",
			draft:  AddFriendDraft{Name: "Dana", Image: ""},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.draft
			d.defaultImage = models.PlaceholderImage
			before := d

			friend, ok := d.Submit(sequentialIDs())
			if ok != tt.wantOK {
				t.Fatalf("Submit() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if d != before {
					t.Errorf("rejected submit changed draft: %+v -> %+v", before, d)
				}
				return
			}
			if friend.ID != "id-1" {
				t.Errorf("ID = %s, want id-1", friend.ID)
			}
			if friend.Balance != 0 {
				t.Errorf("Balance = %d, want 0", friend.Balance)
			}
			if friend.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", friend.Name, tt.wantName)
			}
			if friend.Image != tt.wantImg {
				t.Errorf("Image = %s, want %s", friend.Image, tt.wantImg)
			}
			if d.Name != "" || d.Image != models.PlaceholderImage {
				t.Errorf("draft not reset after submit: %+v", d)
			}
		})
	}
}

func TestAddFriendDraft_UniqueIDs(t *testing.T) {
	d := NewAddFriendDraft(models.PlaceholderImage)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		d.Name = "Friend"
		friend, ok := d.Submit(UUIDGenerator)
		if !ok {
			t.Fatalf("submit %d rejected", i)
		}
		if seen[friend.ID] {
			t.Fatalf("duplicate ID %s", friend.ID)
		}
		seen[friend.ID] = true
		if !strings.HasSuffix(friend.Image, friend.ID) {
			t.Errorf("image %s does not carry ID %s", friend.Image, friend.ID)
		}
	}
}

func TestSplitBillDraft_PaidByUserClamp(t *testing.T) {
	d := NewSplitBillDraft()
	d.SetBill(models.AmountOf(100))

	if !d.SetPaidByUser(models.AmountOf(40)) {
		t.Fatal("expected 40 to be accepted")
	}
	if d.SetPaidByUser(models.AmountOf(150)) {
		t.Error("expected 150 to be rejected when bill is 100")
	}
	if got := d.PaidByUser(); got != models.AmountOf(40) {
		t.Errorf("PaidByUser = %v, want prior value 40", got)
	}
	if !d.SetPaidByUser(models.AmountOf(100)) {
		t.Error("expected expense equal to bill to be accepted")
	}
	if !d.SetPaidByUser(models.Unset()) {
		t.Error("expected clearing the expense to be accepted")
	}
}

func TestSplitBillDraft_PaidByUserWithoutBill(t *testing.T) {
	d := NewSplitBillDraft()
	if d.SetPaidByUser(models.AmountOf(5)) {
		t.Error("expected expense to be rejected while bill is unset")
	}
	if d.PaidByUser().IsSet() {
		t.Error("PaidByUser should remain unset")
	}
}

func TestSplitBillDraft_PaidByFriend(t *testing.T) {
	d := NewSplitBillDraft()
	if d.PaidByFriend().IsSet() {
		t.Error("PaidByFriend should be unset while bill is unset")
	}
	d.SetBill(models.AmountOf(100))
	if got := d.PaidByFriend(); got.Value() != 100 {
		t.Errorf("PaidByFriend = %d, want 100", got.Value())
	}
	d.SetPaidByUser(models.AmountOf(40))
	if got := d.PaidByFriend(); got.Value() != 60 {
		t.Errorf("PaidByFriend = %d, want 60", got.Value())
	}
}

func TestSplitBillDraft_BillLoweredBelowExpense(t *testing.T) {
	d := NewSplitBillDraft()
	d.SetBill(models.AmountOf(100))
	if !d.SetPaidByUser(models.AmountOf(80)) {
		t.Fatal("expense 80 rejected with bill 100")
	}

	d.SetBill(models.AmountOf(50))

	if got := d.PaidByUser().Value(); got != 80 {
		t.Errorf("PaidByUser = %d, want 80 kept", got)
	}
	if got := d.PaidByFriend().Value(); got != -30 {
		t.Errorf("PaidByFriend = %d, want -30", got)
	}
	delta, ok := d.Submit()
	if !ok {
		t.Fatal("Submit() rejected with both amounts set")
	}
	if delta != -30 {
		t.Errorf("Submit() delta = %d, want -30", delta)
	}
}

func TestSplitBillDraft_Submit(t *testing.T) {
	tests := []struct {
		name      string
		bill      models.Amount
		paid      models.Amount
		payer     models.Payer
		wantDelta int64
		wantOK    bool
	}{
		{"user pays", models.AmountOf(100), models.AmountOf(40), models.PayerUser, 60, true},
		{"friend pays", models.AmountOf(100), models.AmountOf(40), models.PayerFriend, -40, true},
		{"unset bill", models.Unset(), models.Unset(), models.PayerUser, 0, false},
		{"unset expense", models.AmountOf(100), models.Unset(), models.PayerUser, 0, false},
		{"zero expense", models.AmountOf(100), models.AmountOf(0), models.PayerFriend, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewSplitBillDraft()
			d.SetBill(tt.bill)
			d.SetPaidByUser(tt.paid)
			d.SetPayer(tt.payer)

			delta, ok := d.Submit()
			if ok != tt.wantOK {
				t.Fatalf("Submit() ok = %v, want %v", ok, tt.wantOK)
			}
			if delta != tt.wantDelta {
				t.Errorf("Submit() delta = %d, want %d", delta, tt.wantDelta)
			}
		})
	}
}

func TestSplitBillDraft_Reset(t *testing.T) {
	d := NewSplitBillDraft()
	d.SetBill(models.AmountOf(10))
	d.SetPaidByUser(models.AmountOf(5))
	d.TogglePayer()

	d.Reset()

	if d.Bill().IsSet() || d.PaidByUser().IsSet() || d.Payer() != models.PayerUser {
		t.Errorf("Reset left state behind: bill=%v paid=%v payer=%s", d.Bill(), d.PaidByUser(), d.Payer())
	}
}
