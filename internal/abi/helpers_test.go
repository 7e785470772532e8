package abi

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestSafeMulU32(t *testing.T) {
	tests := []struct {
		name   string
		a, b   uint32
		want   uint32
		wantOK bool
	}{
		{"zero * zero", 0, 0, 0, true},
		{"zero * max", 0, math.MaxUint32, 0, true},
		{"max * one", math.MaxUint32, 1, math.MaxUint32, true},
		{"element count * width", 5, 4, 20, true},
		{"overflow", math.MaxUint32, 2, 0, false},
		{"large overflow", 100000, 100000, 0, false},
		{"edge case ok", 65536, 65535, 65536 * 65535, true},
		{"edge case overflow", 65536, 65537, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeMulU32(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Errorf("SafeMulU32(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SafeMulU32(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSafeAddU32(t *testing.T) {
	tests := []struct {
		name   string
		a, b   uint32
		want   uint32
		wantOK bool
	}{
		{"zero + zero", 0, 0, 0, true},
		{"zero + max", 0, math.MaxUint32, math.MaxUint32, true},
		{"max + one", math.MaxUint32, 1, 0, false},
		{"offset + header", 56, HeaderSize, 64, true},
		{"large address + size ok", 0xFFFF0000, 0x0000FFFF, 0xFFFFFFFF, true},
		{"large address + size overflow", 0xFFFF0000, 0x00010000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeAddU32(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Errorf("SafeAddU32(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SafeAddU32(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		name   string
		offset uint32
		align  uint32
		want   uint32
	}{
		{"align 0", 5, 0, 5},
		{"offset 0 align 1", 0, 1, 0},
		{"offset 3 align 4", 3, 4, 4},
		{"offset 0 align 8", 0, 8, 0},
		{"offset 1 align 8", 1, 8, 8},
		{"offset 7 align 8", 7, 8, 8},
		{"offset 8 align 8", 8, 8, 8},
		{"offset 9 align 8", 9, 8, 16},
		{"offset 15 align 8", 15, 8, 16},
		{"offset 17 align 16", 17, 16, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlignTo(tt.offset, tt.align)
			if got != tt.want {
				t.Errorf("AlignTo(%d, %d) = %d, want %d", tt.offset, tt.align, got, tt.want)
			}
		})
	}
}

func TestIsAligned(t *testing.T) {
	for _, off := range []uint32{0, 8, 16, 4096} {
		if !IsAligned(off) {
			t.Errorf("IsAligned(%d) = false, want true", off)
		}
	}
	for _, off := range []uint32{1, 4, 7, 12, 4097} {
		if IsAligned(off) {
			t.Errorf("IsAligned(%d) = true, want false", off)
		}
	}
}

func TestPaddedSize(t *testing.T) {
	tests := []struct {
		name   string
		body   uint32
		want   uint32
		wantOK bool
	}{
		{"empty body", 0, 8, true},
		{"int body", 4, 16, true},
		{"long body", 8, 16, true},
		{"string hello", 6, 16, true},
		{"nine bytes", 9, 24, true},
		{"overflow", math.MaxUint32 - 4, 0, false},
		{"near max", math.MaxUint32 - 8, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PaddedSize(tt.body)
			if ok != tt.wantOK {
				t.Fatalf("PaddedSize(%d) ok = %v, want %v", tt.body, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("PaddedSize(%d) = %d, want %d", tt.body, got, tt.want)
			}
		})
	}
}

func TestFits(t *testing.T) {
	tests := []struct {
		name             string
		offset, n, limit uint32
		want             bool
	}{
		{"exact", 0, 16, 16, true},
		{"inside", 8, 4, 16, true},
		{"past end", 8, 12, 16, false},
		{"wraparound", math.MaxUint32, 2, math.MaxUint32, false},
		{"zero length at end", 16, 0, 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fits(tt.offset, tt.n, tt.limit); got != tt.want {
				t.Errorf("Fits(%d, %d, %d) = %v, want %v", tt.offset, tt.n, tt.limit, got, tt.want)
			}
		})
	}
}

func TestFieldAccess(t *testing.T) {
	buf := make([]byte, 16)
	PutU32(buf, 0, 0xdeadbeef)
	PutU64(buf, 8, 0x0102030405060708)

	if got := binary.NativeEndian.Uint32(buf[:4]); got != 0xdeadbeef {
		t.Errorf("PutU32 is not in host byte order: % x", buf[:4])
	}
	if got := U32(buf, 0); got != 0xdeadbeef {
		t.Errorf("U32 = %#x, want 0xdeadbeef", got)
	}
	if got := U64(buf, 8); got != 0x0102030405060708 {
		t.Errorf("U64 = %#x", got)
	}

	Zero(buf, 0, 8)
	for i, b := range buf[:8] {
		if b != 0 {
			t.Fatalf("buf[%d] = %d after Zero", i, b)
		}
	}
}
