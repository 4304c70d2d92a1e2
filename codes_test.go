package joydev

import "testing"

func TestCodeNames(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{ButtonName(0x120), "Trigger"},
		{ButtonName(0x125), "PinkieButton"},
		{ButtonName(0x130), "BtnA"},
		{ButtonName(0x223), "BtnDPadRight"},
		{ButtonName(0x2c0), "<?>"},
		{AxisName(0x00), "X"},
		{AxisName(0x05), "Rz"},
		{AxisName(0x10), "Hat0X"},
		{AxisName(0x21), "Profile"},
		{AxisName(0x2d), "<?>"},
		{HatName(0x10), "Hat0"},
		{HatName(0x11), "Hat0"},
		{HatName(0x17), "Hat3"},
		{HatName(0x00), "<?>"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestHatDirection(t *testing.T) {
	tests := []struct {
		x, y int32
		want string
	}{
		{0, 0, "centered"},
		{0, -1, "up"},
		{0, 1, "down"},
		{-1, 0, "left"},
		{1, 0, "right"},
		{-1, -1, "up-left"},
		{1, 1, "down-right"},
	}
	for _, tc := range tests {
		if got := HatDirection(tc.x, tc.y); got != tc.want {
			t.Errorf("HatDirection(%d, %d): got %q, want %q", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestIsHatCode(t *testing.T) {
	for code := uint16(ABS_X); code < ABS_RESERVED; code++ {
		want := code >= 0x10 && code <= 0x17
		if isHatCode(code) != want {
			t.Errorf("isHatCode(0x%02x) = %v", code, !want)
		}
	}
}
