package scene

import (
	"strings"
	"testing"
)

func TestByNameBuildsEveryScene(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := ByName(name, 80, 60)
			if err != nil {
				t.Fatalf("ByName(%q) error = %v", name, err)
			}
			if s.Camera.HSize != 80 || s.Camera.VSize != 60 {
				t.Errorf("camera size = %dx%d, want 80x60", s.Camera.HSize, s.Camera.VSize)
			}
			if len(s.World.Shapes) == 0 {
				t.Error("scene has no shapes")
			}
			if len(s.World.Lights) == 0 {
				t.Error("scene has no lights")
			}
			if s.MaxDepth <= 0 {
				t.Errorf("MaxDepth = %d, want > 0", s.MaxDepth)
			}
		})
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("nope", 80, 60)
	if err == nil {
		t.Fatal("ByName(\"nope\") succeeded, want error")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error %q does not name the unknown scene", err)
	}
}
