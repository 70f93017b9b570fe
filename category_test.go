package chartparse

import "testing"

func TestCategoryEqual(t *testing.T) {
	a := NewCategory("Np").Extend("num", "sg")
	b := NewCategory("Np").Extend("num", "sg")
	if !a.Equal(b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}
	c := NewCategory("Np").Extend("num", "pl")
	if a.Equal(c) {
		t.Fatalf("did not expect %v to equal %v", a, c)
	}
}

func TestCategoryLessGeneralThan(t *testing.T) {
	general := NewCategory("Np")
	specific := general.Extend("num", "sg")
	if !specific.LessGeneralThan(general) {
		t.Fatalf("%v should be less general than %v", specific, general)
	}
	if general.LessGeneralThan(specific) {
		t.Fatalf("%v should not be less general than %v", general, specific)
	}
	if specific.LessGeneralThan(specific) {
		t.Fatalf("a category is never strictly less general than itself")
	}
}

func TestCategorySubsumes(t *testing.T) {
	general := NewCategory("Np")
	specific := general.Extend("num", "sg")
	if !general.Subsumes(specific) {
		t.Fatalf("%v should subsume %v", general, specific)
	}
	if !general.Subsumes(general) {
		t.Fatalf("a category subsumes itself")
	}
	if specific.Subsumes(general) {
		t.Fatalf("%v should not subsume %v", specific, general)
	}
}

func TestCategoryClashes(t *testing.T) {
	sg := NewCategory("Np").Extend("num", "sg")
	pl := NewCategory("Np").Extend("num", "pl")
	if !sg.Clashes(pl) {
		t.Fatalf("%v and %v should clash on num", sg, pl)
	}
	bare := NewCategory("Np")
	if bare.Clashes(sg) || sg.Clashes(bare) {
		t.Fatalf("a missing key never clashes")
	}
	differentAtom := NewCategory("Vp").Extend("num", "pl")
	if sg.Clashes(differentAtom) {
		t.Fatalf("different atoms never clash")
	}
}

func TestCategoryExtendWith(t *testing.T) {
	donor := NewCategory("n").Extend("num", "pl").Extend("case", "acc")
	base := NewCategory("Np")
	result := base.ExtendWith([]string{"num", "gender"}, donor)
	if v, ok := result.Features.Get("num"); !ok || v != "pl" {
		t.Fatalf("expected num:pl to be percolated, got %v", result)
	}
	if _, ok := result.Features.Get("gender"); ok {
		t.Fatalf("gender should be skipped: donor lacks it")
	}
	if _, ok := result.Features.Get("case"); ok {
		t.Fatalf("case should not be percolated: not in keys list")
	}
}

func TestCategoryOrdering(t *testing.T) {
	cats := []Category{
		NewCategory("Vp"),
		NewCategory("Np").Extend("num", "pl"),
		NewCategory("Np").Extend("num", "sg"),
		NewCategory("Np"),
	}
	SortCategories(cats)
	for i := 1; i < len(cats); i++ {
		if cats[i-1].Less(cats[i]) == false && !cats[i-1].Equal(cats[i]) {
			t.Fatalf("categories not sorted: %v before %v", cats[i-1], cats[i])
		}
	}
}

func TestCategoryString(t *testing.T) {
	c := NewCategory("Np").Extend("num", "sg").Extend("case", "nom")
	got := c.String()
	want := "Np(case:nom,num:sg)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
