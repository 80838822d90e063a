package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	all := c.List("")
	if len(all) != 6 {
		t.Fatalf("expected 6 products, got %d", len(all))
	}

	p, ok := c.Find("1")
	if !ok {
		t.Fatal("product 1 should exist")
	}
	if p.Name != "iPhone 15 Pro" || p.Price != 999 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, ok := c.Find("999"); ok {
		t.Fatal("unknown product id should not resolve")
	}
}

func TestListByBrand(t *testing.T) {
	c := Default()

	apple := c.List("Apple")
	if len(apple) != 1 || apple[0].Brand != "Apple" {
		t.Fatalf("unexpected Apple listing: %+v", apple)
	}

	if got := c.List("NoSuchBrand"); len(got) != 0 {
		t.Fatalf("expected empty listing, got %+v", got)
	}
}

func TestBrandsSortedAndDistinct(t *testing.T) {
	c := New([]Product{
		{ID: "1", Brand: "Sony"},
		{ID: "2", Brand: "Apple"},
		{ID: "3", Brand: "Sony"},
	})

	want := []string{"Apple", "Sony"}
	if diff := cmp.Diff(want, c.Brands()); diff != "" {
		t.Fatalf("brands mismatch: %s", diff)
	}
}

func TestListReturnsCopy(t *testing.T) {
	c := Default()

	got := c.List("")
	got[0].Name = "mutated"

	if c.List("")[0].Name == "mutated" {
		t.Fatal("List must not expose the internal slice")
	}
}
