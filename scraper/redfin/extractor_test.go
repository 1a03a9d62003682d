package redfin

import (
	"errors"
	"testing"
)

func TestReadPrice(t *testing.T) {
	browser := &fakeBrowser{text: "$450K\n"}
	ex := NewExtractor(browser, testConfig(), newTestLogger())

	got, err := ex.ReadPrice()
	if err != nil {
		t.Fatalf("ReadPrice() returned error: %v", err)
	}
	if got != 450000 {
		t.Errorf("ReadPrice() = %.2f; want 450000", got)
	}
}

func TestReadPriceElementMissing(t *testing.T) {
	browser := &fakeBrowser{textErr: errors.New("wait timed out")}
	ex := NewExtractor(browser, testConfig(), newTestLogger())

	if _, err := ex.ReadPrice(); !errors.Is(err, ErrPriceNotFound) {
		t.Errorf("ReadPrice() = %v; want ErrPriceNotFound", err)
	}
}

func TestReadPriceUnparsableText(t *testing.T) {
	browser := &fakeBrowser{text: "N/A"}
	ex := NewExtractor(browser, testConfig(), newTestLogger())

	if _, err := ex.ReadPrice(); !errors.Is(err, ErrUnparsablePrice) {
		t.Errorf("ReadPrice() = %v; want ErrUnparsablePrice", err)
	}
}
