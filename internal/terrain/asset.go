package terrain

import "path"

// DefaultAssetDir is where the tile artwork lives, relative to the asset root.
const DefaultAssetDir = "hextiles_rotated"

// PlaceholderAsset is drawn for every tag without dedicated artwork.
const PlaceholderAsset = "Hex - Base (blank).png"

var assets = map[Tag]string{
	BaseLush:               "Hex - Base (lush).png",
	PlainsLush:             "Hex - Plains (lush) 5.png",
	MountainPeakRocky:      "Hex - Mountains, peak (rocky).png",
	MountainPeakLush:       "Hex - Mountains, peak (lush).png",
	MountainPeakSnowy:      "Hex - Mountains, peak (snowy).png",
	MountainMediumRocky:    "Hex - Mountains, medium (rocky).png",
	MountainLowRocky:       "Hex - Mountains, low (rocky).png",
	MountainFoothillsRocky: "Hex - Mountains, foothills (rocky).png",
	OceanWaves:             "Hex - Water - Ocean (waves) 1.png",
}

// AssetPath resolves the artwork for a tag inside dir. Tags without artwork
// resolve to the placeholder; None resolves to "" (draw nothing).
func AssetPath(dir string, t Tag) string {
	if t == None {
		return ""
	}
	file, ok := assets[t]
	if !ok {
		file = PlaceholderAsset
	}
	if dir == "" {
		return file
	}
	return path.Join(dir, file)
}
