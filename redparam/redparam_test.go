// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package redparam_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/js-arias/redrank/rank"
	"github.com/js-arias/redrank/redparam"
)

func TestRedParam(t *testing.T) {
	name := filepath.Join(t.TempDir(), "red-parameters-for-test.tab")
	rp := redparam.New(name)
	testRP(t, rp, nil, name)

	if err := rp.SetDomain("archaea"); err != nil {
		t.Fatalf("unable to set domain: %v", err)
	}
	if err := rp.SetReference("RefSeq"); err != nil {
		t.Fatalf("unable to set reference: %v", err)
	}
	if !reflect.DeepEqual(rp.Medians(), rank.Archaea) {
		t.Errorf("medians: got %v, want %v", rp.Medians(), rank.Archaea)
	}
	m := []float64{0.2, 0.36, 0.56, 0.7, 0.9}
	if err := rp.SetMedians(m); err != nil {
		t.Fatalf("unable to set medians: %v", err)
	}

	if err := rp.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := redparam.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testRP(t, np, rp, name)
}

func TestReadPartial(t *testing.T) {
	name := filepath.Join(t.TempDir(), "partial.tab")
	data := "# partial parameters\nparameter\tvalue\ngenus\t0.95\ndomain\td__Archaea\n"
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	rp, err := redparam.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	if rp.Domain() != rank.ArchaeaDomain {
		t.Errorf("domain: got %q, want %q", rp.Domain(), rank.ArchaeaDomain)
	}
	want := append([]float64{}, rank.Archaea...)
	want[4] = 0.95
	if !reflect.DeepEqual(rp.Medians(), want) {
		t.Errorf("medians: got %v, want %v", rp.Medians(), want)
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"no header":       "",
		"missing field":   "parameter\n",
		"bad median":      "parameter\tvalue\nphylum\tnone\n",
		"out of range":    "parameter\tvalue\nphylum\t1.5\n",
		"bad domain":      "parameter\tvalue\ndomain\td__Eukaryota\n",
		"bad reference":   "parameter\tvalue\nreference\tother\n",
		"empty reference": "parameter\tvalue\nreference\t \n",
	}
	dir := t.TempDir()
	for name, data := range tests {
		f := filepath.Join(dir, "param.tab")
		if err := os.WriteFile(f, []byte(data), 0o644); err != nil {
			t.Fatalf("unable to write file: %v", err)
		}
		if _, err := redparam.Read(f); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestSetMedians(t *testing.T) {
	rp := redparam.New("")
	if err := rp.SetMedians([]float64{0.1, 0.2}); err == nil {
		t.Errorf("short medians: expecting error")
	}
	if err := rp.SetMedians([]float64{0.1, 0.2, 0.3, 0.4, 2}); err == nil {
		t.Errorf("invalid median: expecting error")
	}

	if err := rp.SetMedians([]float64{0.9, 0.2, 0.3, 0.4, 0.5}); err != nil {
		t.Fatalf("unable to set medians: %v", err)
	}
	if rp.Ordered() {
		t.Errorf("ordered: got true, want false")
	}
	if _, err := rp.Bounds(); err != nil {
		t.Errorf("bounds: unexpected error: %v", err)
	}
}

func testRP(t testing.TB, rp, want *redparam.RP, name string) {
	t.Helper()

	if want == nil {
		want = redparam.New(name)
	}

	if rp.Name() != want.Name() {
		t.Errorf("name: got %q, want %q", rp.Name(), want.Name())
	}
	if rp.Domain() != want.Domain() {
		t.Errorf("domain: got %q, want %q", rp.Domain(), want.Domain())
	}
	if rp.Reference() != want.Reference() {
		t.Errorf("reference: got %q, want %q", rp.Reference(), want.Reference())
	}
	if !reflect.DeepEqual(rp.Medians(), want.Medians()) {
		t.Errorf("medians: got %v, want %v", rp.Medians(), want.Medians())
	}
	if !rp.Ordered() {
		t.Errorf("ordered: got false, want true")
	}

	got, err := rp.Bounds()
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	wb, _ := want.Bounds()
	if !reflect.DeepEqual(got, wb) {
		t.Errorf("bounds: got %v, want %v", got, wb)
	}
}
