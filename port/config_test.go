package port

import (
	"testing"

	"github.com/wippyai/atom-runtime/errors"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig("in"), false},
		{"header sized", DefaultConfig("in").WithCapacity(8), false},
		{"too small", DefaultConfig("in").WithCapacity(7), true},
		{"no name", DefaultConfig("in").WithName(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if !errors.IsKind(err, errors.KindInvalidInput) {
					t.Fatalf("Validate() = %v, want invalid_input", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v", err)
			}
		})
	}
}

func TestConfig_With(t *testing.T) {
	base := DefaultConfig("control")
	c := base.WithCapacity(256).WithName("notify")
	if c.Capacity != 256 || c.Name != "notify" {
		t.Errorf("config = %+v", c)
	}
	if base.Capacity != DefaultCapacity || base.Name != "control" {
		t.Errorf("With methods modified the receiver: %+v", base)
	}
}
