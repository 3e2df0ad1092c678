package platform

import "testing"

func TestParseMouseButton(t *testing.T) {
	if b, err := ParseMouseButton("left"); err != nil || b != MouseLeft {
		t.Fatalf("left: got %v, %v", b, err)
	}
	if b, err := ParseMouseButton("Right"); err != nil || b != MouseRight {
		t.Fatalf("Right: got %v, %v", b, err)
	}
	if b, err := ParseMouseButton(""); err != nil || b != MouseLeft {
		t.Fatalf("default: got %v, %v", b, err)
	}
	if _, err := ParseMouseButton("middle"); err == nil {
		t.Fatal("expected error for unsupported button")
	}
}

func TestParsePosition(t *testing.T) {
	p, err := ParsePosition("100,200")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}
	if p.X != 100 || p.Y != 200 {
		t.Fatalf("got %+v", p)
	}

	if _, err := ParsePosition("100"); err == nil {
		t.Fatal("expected error for one component")
	}
	if _, err := ParsePosition("a,b"); err == nil {
		t.Fatal("expected error for non-numeric components")
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("10, 20, 300, 400")
	if err != nil {
		t.Fatalf("ParseRegion: %v", err)
	}
	if r.X != 10 || r.Y != 20 || r.Width != 300 || r.Height != 400 {
		t.Fatalf("got %+v", r)
	}

	for _, bad := range []string{"10,20,300", "10,20,300,400,500", "10,20,x,400", "10,20,3.5,400", ""} {
		if _, err := ParseRegion(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
