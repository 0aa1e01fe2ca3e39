// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"testing"

	"github.com/bureau-foundation/bytecoerce/lib/testutil"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Input
		want bool
	}{
		{"text and buffer", Text("Hello world!"), Buffer(helloWorld), true},
		{"text and sequence", Text("AB"), Sequence{65, 66}, true},
		{"scalar and text", Int(10), Text("10"), true},
		{"both empty", Buffer{}, Text(""), true},
		{"different lengths", Sequence{1, 2}, Buffer{1, 2, 0}, false},
		{"one byte differs", Buffer{1, 2, 3}, Buffer{1, 2, 4}, false},
		{"empty and non-empty", Buffer{}, Buffer{0}, false},
		{"array and its bytes", Array[uint16]{0x0102}, Buffer(Array[uint16]{0x0102}.AppendBytes(nil, HostOrder())), true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Equal(test.a, test.b); got != test.want {
				t.Errorf("Equal = %v, want %v", got, test.want)
			}
			if got := Equal(test.b, test.a); got != test.want {
				t.Errorf("Equal (swapped) = %v, want %v", got, test.want)
			}
		})
	}
}

func TestEqualSubViews(t *testing.T) {
	view := ToView(Buffer{7, 7, 1, 2, 7, 7})
	left, err := view.Sub(2, 2)
	testutil.RequireNoError(t, err, "Sub")
	if !Equal(left, Sequence{1, 2}) {
		t.Error("sub-view should compare only its window")
	}
	if !Equal(view, view) {
		t.Error("view should equal itself")
	}
}

func TestEqualAny(t *testing.T) {
	equal, err := EqualAny("abc", []byte("abc"))
	testutil.RequireNoError(t, err, "EqualAny")
	if !equal {
		t.Error(`EqualAny("abc", []byte("abc")) = false`)
	}

	equal, err = EqualAny([]int{1}, []byte{2})
	testutil.RequireNoError(t, err, "EqualAny")
	if equal {
		t.Error("EqualAny([1], [2]) = true")
	}

	_, err = EqualAny(func() {}, "x")
	testutil.RequireErrorIs(t, err, ErrInvalidInputKind, "EqualAny(func)")
	_, err = EqualAny("x", map[int]int{})
	testutil.RequireErrorIs(t, err, ErrInvalidInputKind, "EqualAny(map)")
}
