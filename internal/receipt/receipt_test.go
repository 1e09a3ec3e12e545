package receipt

import (
	"math"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"resto_back_end/internal/models"
)

func sampleOrder(t *testing.T) *models.Order {
	t.Helper()
	order, err := models.NewOrder("T5")
	if err != nil {
		t.Fatal(err)
	}
	order.AddItem("A1", "Burger", 15.00, 2)
	order.AddItem("B1", "Soda", 3.00, 3)
	return order
}

func TestNew_EmptyOrderFails(t *testing.T) {
	order, _ := models.NewOrder("T1")

	if _, err := New(order, 0.08, 0); err == nil {
		t.Errorf("receipt for an empty order must fail")
	}
	if _, err := New(nil, 0.08, 0); err == nil {
		t.Errorf("receipt for a nil order must fail")
	}
}

func TestAmounts(t *testing.T) {
	rcpt, err := New(sampleOrder(t), 0.08, 0.10)
	if err != nil {
		t.Fatal(err)
	}

	if got := rcpt.Subtotal(); math.Abs(got-39.00) > 1e-9 {
		t.Errorf("subtotal: expected 39.00, got %.4f", got)
	}
	if got := rcpt.Tax(); math.Abs(got-3.12) > 1e-9 {
		t.Errorf("tax: expected 3.12, got %.4f", got)
	}
	if got := rcpt.Tip(); math.Abs(got-3.90) > 1e-9 {
		t.Errorf("tip: expected 3.90, got %.4f", got)
	}
	if got := rcpt.Total(); math.Abs(got-46.02) > 1e-9 {
		t.Errorf("total: expected 46.02, got %.4f", got)
	}
}

func TestGenerateSimple(t *testing.T) {
	rcpt, err := New(sampleOrder(t), 0.08, 0)
	if err != nil {
		t.Fatal(err)
	}

	out := rcpt.GenerateSimple()
	for _, want := range []string{
		"RECEIPT #" + rcpt.ReceiptID,
		"Order: #" + rcpt.Order.OrderID,
		"Burger x2 = $30.00",
		"Soda x3 = $9.00",
		"Subtotal: $39.00",
		"Tax (8.0%): $3.12",
		"TOTAL: $42.12",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("simple receipt missing %q:\n%s", want, out)
		}
	}

	// pas de ligne pourboire à 0%
	if strings.Contains(out, "Tip") {
		t.Errorf("tip line should be omitted when tip is zero:\n%s", out)
	}
}

func TestGenerateDetailed(t *testing.T) {
	rcpt, err := New(sampleOrder(t), 0.08, 0.10)
	if err != nil {
		t.Fatal(err)
	}

	out := rcpt.GenerateDetailed()
	for _, want := range []string{
		"INVOICE / RECEIPT",
		"Customer: T5",
		"Tip (10.0%):",
		"GRAND TOTAL:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detailed receipt missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateDetailed_TruncatesLongNamesByRune(t *testing.T) {
	order, _ := models.NewOrder("T2")
	order.AddItem("D9", "Crème brûlée au chocolat", 9.50, 1)

	rcpt, err := New(order, 0.08, 0)
	if err != nil {
		t.Fatal(err)
	}

	out := rcpt.GenerateDetailed()
	if !utf8.ValidString(out) {
		t.Fatalf("detailed receipt must be valid UTF-8:\n%s", out)
	}
	// 19 runes conservées, jamais un accent coupé en deux
	if !strings.Contains(out, "Crème brûlée au cho") {
		t.Errorf("expected rune-truncated name in output:\n%s", out)
	}
	if strings.Contains(out, "Crème brûlée au choc") {
		t.Errorf("name should be truncated to 19 runes:\n%s", out)
	}
}

func TestRender_UnknownType(t *testing.T) {
	rcpt, err := New(sampleOrder(t), 0.08, 0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := rcpt.Render("FANCY"); err == nil {
		t.Errorf("unknown rendering type must fail")
	}
	if out, err := rcpt.Render(TypeSimple); err != nil || out == "" {
		t.Errorf("SIMPLE rendering should succeed, err=%v", err)
	}
	if out, err := rcpt.Render(TypeDetailed); err != nil || out == "" {
		t.Errorf("DETAILED rendering should succeed, err=%v", err)
	}
}

func TestSaveToFile(t *testing.T) {
	rcpt, err := New(sampleOrder(t), 0.08, 0)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path, err := rcpt.SaveToFile(dir)
	if err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("receipt file missing: %v", err)
	}
	if !strings.Contains(string(data), "GRAND TOTAL:") {
		t.Errorf("receipt file should contain the detailed rendering")
	}
	if !strings.HasSuffix(path, rcpt.ReceiptID+".txt") {
		t.Errorf("unexpected receipt file name: %s", path)
	}
}

func TestReceiptDoesNotMutateOrder(t *testing.T) {
	order := sampleOrder(t)
	statusBefore := order.Status
	totalBefore := order.GetTotal()

	rcpt, err := New(order, 0.08, 0.15)
	if err != nil {
		t.Fatal(err)
	}
	rcpt.GenerateSimple()
	rcpt.GenerateDetailed()

	if order.Status != statusBefore || order.GetTotal() != totalBefore || len(order.Items) != 2 {
		t.Errorf("receipt rendering must not mutate the order")
	}
}
