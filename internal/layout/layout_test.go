package layout

import (
	"testing"

	"github.com/wippyai/atom-runtime/internal/types"
)

func TestOf(t *testing.T) {
	tests := []struct {
		kind types.Kind
		want Info
	}{
		{types.KindBool, Info{Width: 4}},
		{types.KindInt, Info{Width: 4}},
		{types.KindLong, Info{Width: 8}},
		{types.KindFloat, Info{Width: 4}},
		{types.KindDouble, Info{Width: 8}},
		{types.KindURID, Info{Width: 4}},
		{types.KindChunk, Info{}},
		{types.KindString, Info{}},
		{types.KindTuple, Info{}},
		{types.KindLiteral, Info{BodyHeader: 8}},
		{types.KindVector, Info{BodyHeader: 8}},
		{types.KindSequence, Info{BodyHeader: 8}},
		{types.KindObject, Info{BodyHeader: 8}},
		{types.Kind(200), Info{}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := Of(tt.kind); got != tt.want {
				t.Errorf("Of(%s) = %+v, want %+v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestMinBodySize(t *testing.T) {
	tests := []struct {
		kind types.Kind
		want uint32
	}{
		{types.KindInt, 4},
		{types.KindDouble, 8},
		{types.KindString, 1},
		{types.KindPath, 1},
		{types.KindURI, 1},
		{types.KindLiteral, 9},
		{types.KindVector, 8},
		{types.KindSequence, 8},
		{types.KindObject, 8},
		{types.KindTuple, 0},
		{types.KindChunk, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := MinBodySize(tt.kind); got != tt.want {
				t.Errorf("MinBodySize(%s) = %d, want %d", tt.kind, got, tt.want)
			}
		})
	}
}
