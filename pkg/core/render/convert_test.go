package render

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><line x1="0" y1="0" x2="10" y2="10" stroke="#000"/></svg>`

func TestToPNG(t *testing.T) {
	data, err := ToPNG(context.Background(), []byte(testSVG), 1)
	if !HasConverter() {
		if !errors.Is(err, ErrConverterMissing) {
			t.Fatalf("ToPNG() error = %v, want ErrConverterMissing", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("ToPNG() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("ToPNG() did not return a PNG")
	}
}

func TestToPDFCancelled(t *testing.T) {
	if !HasConverter() {
		t.Skip("rsvg-convert not installed")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ToPDF(ctx, []byte(testSVG)); err == nil {
		t.Error("ToPDF() with cancelled context should fail")
	}
}
