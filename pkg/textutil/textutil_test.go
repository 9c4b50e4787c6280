package textutil

import "testing"

func TestNormalize_FullWidth(t *testing.T) {
	// Full-width ASCII and ideographic space should normalize away.
	got := Normalize("ＣＲＭ　系統")
	if got != "CRM 系統" {
		t.Errorf("Normalize() = %q, want %q", got, "CRM 系統")
	}
}

func TestFold_Lowercases(t *testing.T) {
	if got := Fold("  Excel 報表  "); got != "excel 報表" {
		t.Errorf("Fold() = %q, want %q", got, "excel 報表")
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize("   \t\n "); got != "" {
		t.Errorf("Normalize() = %q, want empty", got)
	}
}

func TestHasHan(t *testing.T) {
	if !HasHan("客戶流失率太高") {
		t.Error("HasHan() = false for Chinese text")
	}
	if HasHan("reports are too slow") {
		t.Error("HasHan() = true for ASCII text")
	}
}
