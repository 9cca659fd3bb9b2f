package terrain

import "testing"

func TestResolveToolNames(t *testing.T) {
	tests := []struct {
		name string
		want Tag
	}{
		{"Erase", Blank},
		{"erase", Blank},
		{"Mountain Peak, Rocky", MountainPeakRocky},
		{"MOUNTAIN PEAK, SNOWY", MountainPeakSnowy},
		{"mountain foothills", MountainFoothillsRocky},
		{"Mountain Foothills, Rocky", MountainFoothillsRocky},
		{"Lush Plains", PlainsLush},
		{"  ocean waves ", OceanWaves},
		{"ForestLush", ForestLush},
		{"none", Blank},
		{"None", Blank},
		{"bogus", Blank},
		{"", Blank},
	}
	for _, tt := range tests {
		if got := Resolve(tt.name); got != tt.want {
			t.Fatalf("Resolve(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestParseReportsUnknown(t *testing.T) {
	for _, name := range []string{"bogus", "none"} {
		if _, ok := Parse(name); ok {
			t.Fatalf("expected %q to be unknown", name)
		}
	}
	if tag, ok := Parse("Ocean Waves"); !ok || tag != OceanWaves {
		t.Fatalf("expected OceanWaves, got %v (ok=%v)", tag, ok)
	}
}

func TestLabelsRoundTrip(t *testing.T) {
	for _, tool := range Tools() {
		if got := Resolve(tool.Label); got != tool.Tag {
			t.Fatalf("label %q: expected %v, got %v", tool.Label, tool.Tag, got)
		}
	}
	if ForestLush.Label() != Unresolved {
		t.Fatalf("expected ForestLush to have the unresolved label, got %q", ForestLush.Label())
	}
	if Tag(999).String() != Unresolved || Tag(999).Valid() {
		t.Fatalf("expected out of range tag to be unresolved")
	}
}

func TestAssetPath(t *testing.T) {
	if got := AssetPath(DefaultAssetDir, OceanWaves); got != "hextiles_rotated/Hex - Water - Ocean (waves) 1.png" {
		t.Fatalf("unexpected ocean asset %q", got)
	}
	if got := AssetPath(DefaultAssetDir, SwampStill); got != "hextiles_rotated/"+PlaceholderAsset {
		t.Fatalf("expected placeholder for SwampStill, got %q", got)
	}
	if got := AssetPath("", Blank); got != PlaceholderAsset {
		t.Fatalf("expected bare placeholder, got %q", got)
	}
	if got := AssetPath(DefaultAssetDir, None); got != "" {
		t.Fatalf("expected empty path for None, got %q", got)
	}
}

func TestFamilies(t *testing.T) {
	for _, tag := range All() {
		f := tag.Family()
		if f.String() == "" {
			t.Fatalf("tag %v has unnamed family", tag)
		}
	}
	if MountainLowRocky.Family() != FamilyMountain || OceanWaves.Family() != FamilyAquatic || Blank.Family() != FamilyBlank {
		t.Fatalf("unexpected family assignment")
	}
}
