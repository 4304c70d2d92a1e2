package joydev

import (
	"reflect"
	"testing"
)

func registryWith(devices ...*DeviceInfo) *Registry {
	return &Registry{open: fakeOpener, devices: devices}
}

func paths(r *Registry) []string {
	out := make([]string, r.Len())
	for i, d := range r.Devices() {
		out[i] = d.Path
	}
	return out
}

func TestSortByNameStableIdempotent(t *testing.T) {
	r := registryWith(
		&DeviceInfo{Name: "Pad", Path: "/a"},
		&DeviceInfo{Name: "Stick", Path: "/b"},
		&DeviceInfo{Name: "Pad", Path: "/c"},
		&DeviceInfo{Name: "Pad", Path: "/d"},
	)

	r.Sort(SortByName)
	want := []string{"/a", "/c", "/d", "/b"}
	if got := paths(r); !reflect.DeepEqual(got, want) {
		t.Errorf("sort by name: got %v, want %v", got, want)
	}

	r.Sort(SortByName)
	if got := paths(r); !reflect.DeepEqual(got, want) {
		t.Errorf("second sort changed the order: got %v, want %v", got, want)
	}
}

func TestSortByPath(t *testing.T) {
	r := registryWith(
		&DeviceInfo{Name: "A", Path: "/z"},
		&DeviceInfo{Name: "B", Path: "/y"},
		&DeviceInfo{Name: "C", Path: "/x"},
	)

	r.Sort(SortByPath)
	want := []string{"/x", "/y", "/z"}
	if got := paths(r); !reflect.DeepEqual(got, want) {
		t.Errorf("sort by path: got %v, want %v", got, want)
	}
}

func TestSortByIdentity(t *testing.T) {
	a := &DeviceInfo{Path: "/a", GUIDString: guidString(newGUID(3, 0x2222, 1, 1))}
	b := &DeviceInfo{Path: "/b", GUIDString: guidString(newGUID(3, 0x1111, 1, 1))}
	r := registryWith(a, b)

	r.Sort(SortByIdentity)
	want := []string{"/b", "/a"}
	if got := paths(r); !reflect.DeepEqual(got, want) {
		t.Errorf("sort by identity: got %v, want %v", got, want)
	}
}

func TestSortEmpty(t *testing.T) {
	r := registryWith()
	r.Sort(SortByName) // must not panic
	if r.Len() != 0 {
		t.Error("sorting an empty registry changed its size")
	}
}
