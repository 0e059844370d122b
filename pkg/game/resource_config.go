package game

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that are loaded together.
// The balloon scene only uses the "init" group, which must resolve completely at setup.
//
// Example from resources.yaml:
//
//	init:
//	  images:
//	    - id: IMAGE_BALLOON_100001
//	      path: images/balloon_100001.png
//	  sounds:
//	    - id: SOUND_BURST
//	      path: sounds/pop.wav
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // List of image resources in this group
	Sounds []SoundResource `yaml:"sounds"` // List of sound resources in this group
}

// ImageResource represents a single image resource definition.
//
// Fields:
//   - ID: Unique identifier for the image (e.g., "IMAGE_HANDLE", "IMAGE_ALPHABET_10001")
//   - Path: Relative path from base_path; ".png" is appended when no extension is given
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource represents a single sound/audio resource definition.
// Supported formats: .wav, .mp3, .ogg (".ogg" is assumed when no extension is given).
//
// Example:
//   - id: SOUND_BGMUSIC
//     path: sounds/carefree.wav
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// IDs returns every resource ID declared in the group, images first.
func (g ResourceGroup) IDs() []string {
	ids := make([]string, 0, len(g.Images)+len(g.Sounds))
	for _, img := range g.Images {
		ids = append(ids, img.ID)
	}
	for _, snd := range g.Sounds {
		ids = append(ids, snd.ID)
	}
	return ids
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "images/pump.png")
//
// Returns:
//   - The full file path (e.g., "assets/images/pump.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
