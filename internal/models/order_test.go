package models

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewOrder(t *testing.T) {
	order, err := NewOrder("T5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != StatusDraft {
		t.Errorf("expected status DRAFT, got %s", order.Status)
	}
	if !strings.HasPrefix(order.OrderID, "ORD-") || len(order.OrderID) != 12 {
		t.Errorf("unexpected order id format: %s", order.OrderID)
	}
	if !order.UpdatedAt.Equal(order.CreatedAt) {
		t.Errorf("updated_at should start equal to created_at")
	}
}

func TestNewOrder_EmptyCustomer(t *testing.T) {
	if _, err := NewOrder("  "); err == nil {
		t.Errorf("expected error for empty customer id")
	}
}

func TestAddItem_AccumulatesQuantity(t *testing.T) {
	order, _ := NewOrder("T1")

	if !order.AddItem("A1", "Burger", 15.00, 2) {
		t.Fatalf("first add should succeed")
	}
	if !order.AddItem("A1", "Burger", 99.99, 1) {
		t.Fatalf("second add should succeed")
	}

	if len(order.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(order.Items))
	}
	if order.Items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", order.Items[0].Quantity)
	}
	// premier ajout gagnant : le prix de la ligne ne bouge pas
	if order.Items[0].Price != 15.00 {
		t.Errorf("expected price 15.00, got %.2f", order.Items[0].Price)
	}
	if !almostEqual(order.GetTotal(), 45.00) {
		t.Errorf("expected total 45.00, got %.2f", order.GetTotal())
	}
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	order, _ := NewOrder("T1")

	for _, qty := range []int{0, -1} {
		if order.AddItem("A1", "Burger", 15.00, qty) {
			t.Errorf("add with quantity %d should fail", qty)
		}
	}
	if len(order.Items) != 0 {
		t.Errorf("order should stay empty, got %d lines", len(order.Items))
	}
}

func TestRemoveItem(t *testing.T) {
	order, _ := NewOrder("T1")
	order.AddItem("A1", "Burger", 15.00, 3)
	order.AddItem("B1", "Soda", 3.00, 2)

	// décrément partiel
	if !order.RemoveItem("A1", 1) {
		t.Fatalf("partial remove should succeed")
	}
	if order.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", order.Items[0].Quantity)
	}

	// retirer au moins la quantité courante supprime la ligne
	if !order.RemoveItem("A1", 5) {
		t.Fatalf("full remove should succeed")
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 remaining line, got %d", len(order.Items))
	}
	if !almostEqual(order.GetTotal(), 6.00) {
		t.Errorf("expected total 6.00, got %.2f", order.GetTotal())
	}

	// quantity <= 0 : suppression de la ligne entière
	if !order.RemoveItem("B1", 0) {
		t.Fatalf("remove-all should succeed")
	}
	if len(order.Items) != 0 {
		t.Errorf("expected empty order, got %d lines", len(order.Items))
	}
}

func TestRemoveItem_MissingProduct(t *testing.T) {
	order, _ := NewOrder("T1")
	order.AddItem("A1", "Burger", 15.00, 1)

	if order.RemoveItem("Z9", 0) {
		t.Errorf("removing an absent product should fail")
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 1 {
		t.Errorf("order should be unchanged")
	}
}

func TestUpdateStatus_EmptyOrderCannotBePending(t *testing.T) {
	order, _ := NewOrder("T1")

	if order.UpdateStatus(StatusPending) {
		t.Errorf("empty order should not reach PENDING")
	}
	if order.Status != StatusDraft {
		t.Errorf("status should stay DRAFT, got %s", order.Status)
	}

	order.AddItem("A1", "Burger", 15.00, 1)
	if !order.UpdateStatus(StatusPending) {
		t.Errorf("non-empty order should reach PENDING")
	}
}

func TestUpdateStatus_Table(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusDraft, StatusPending, true},
		{StatusDraft, StatusProcessing, false},
		{StatusDraft, StatusCompleted, false},
		{StatusDraft, StatusCancelled, true},
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCompleted, true}, // raccourci autorisé
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusDraft, false},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusDraft, "SHIPPED", false},
	}

	for _, tc := range cases {
		order, _ := NewOrder("T1")
		order.AddItem("A1", "Burger", 15.00, 1)
		order.Status = tc.from

		got := order.UpdateStatus(tc.to)
		if got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
		if !got && order.Status != tc.from {
			t.Errorf("%s -> %s: refused transition must not mutate status", tc.from, tc.to)
		}
	}
}

func TestTerminalOrderIsFrozen(t *testing.T) {
	for _, terminal := range []string{StatusCompleted, StatusCancelled} {
		order, _ := NewOrder("T1")
		order.AddItem("A1", "Burger", 15.00, 1)
		order.Status = terminal

		if order.AddItem("B1", "Soda", 3.00, 1) {
			t.Errorf("%s: AddItem should fail", terminal)
		}
		if order.RemoveItem("A1", 0) {
			t.Errorf("%s: RemoveItem should fail", terminal)
		}
		if order.ClearOrder() {
			t.Errorf("%s: ClearOrder should fail", terminal)
		}
		if len(order.Items) != 1 {
			t.Errorf("%s: items must be untouched", terminal)
		}
	}
}

func TestClearOrder(t *testing.T) {
	order, _ := NewOrder("T1")
	order.AddItem("A1", "Burger", 15.00, 2)
	order.AddItem("B1", "Soda", 3.00, 1)
	updated := order.UpdatedAt

	if !order.ClearOrder() {
		t.Fatalf("clearing a draft order should succeed")
	}
	if len(order.Items) != 0 {
		t.Errorf("expected no lines after clear, got %d", len(order.Items))
	}
	if !almostEqual(order.GetTotal(), 0) {
		t.Errorf("expected total 0 after clear, got %.2f", order.GetTotal())
	}
	if order.UpdatedAt.Before(updated) {
		t.Errorf("updated_at should move forward on clear")
	}
}

func TestUpdatedAtBumpedOnMutation(t *testing.T) {
	order, _ := NewOrder("T1")
	created := order.CreatedAt

	order.AddItem("A1", "Burger", 15.00, 1)
	if order.UpdatedAt.Before(created) {
		t.Errorf("updated_at should move forward on mutation")
	}
	if !order.CreatedAt.Equal(created) {
		t.Errorf("created_at must stay immutable")
	}
}
