package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	au "github.com/decker502/balloonpump/internal/audio"
	"github.com/decker502/balloonpump/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// ResourceConfigPath is the default location of the resource configuration.
const ResourceConfigPath = "assets/config/resources.yaml"

// ResourceManager is responsible for centralized management of game resources.
// It loads images and sounds declared in assets/config/resources.yaml and caches them
// by path, so every resource is decoded only once.
//
// Files are read from the embedded filesystem when pkg/embedded has been initialized
// (release builds), otherwise from disk relative to the root directory (tests and tools).
//
// Sounds are decoded once into raw PCM at the audio context's sample rate. Each play
// creates a fresh player from the decoded bytes, which lets the same sound overlap itself.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens during scene setup
// on the main goroutine.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000))
//	if err := rm.LoadResourceConfig(ResourceConfigPath); err != nil {
//	    return err
//	}
//	if err := rm.LoadResourceGroup("init"); err != nil {
//	    return err
//	}
//	handle := rm.GetImageByID("IMAGE_HANDLE")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	soundCache    map[string][]byte           // Cache for decoded PCM data: path -> bytes
	fontFaceCache map[string]*text.GoTextFace // Cache for text faces: key -> face
	audioContext  *audio.Context              // Audio context used for decoding (may be nil)

	// rootDir is prepended to resource paths when reading from disk
	rootDir string

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The audio context used to decode sounds. May be nil, in which case
//     sound files are still verified to exist but are not decoded.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		soundCache:    make(map[string][]byte),
		fontFaceCache: make(map[string]*text.GoTextFace),
		audioContext:  audioContext,
		resourceMap:   make(map[string]string),
	}
}

// SetRootDir sets the directory that disk paths are resolved against.
// It has no effect when resources are served from the embedded filesystem.
func (rm *ResourceManager) SetRootDir(dir string) {
	rm.rootDir = dir
}

// readFile reads a resource file from the embedded filesystem or from disk.
func (rm *ResourceManager) readFile(path string) ([]byte, error) {
	if embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	if rm.rootDir != "" {
		path = filepath.Join(rm.rootDir, path)
	}
	return os.ReadFile(path)
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/images/handle.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := rm.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSound loads a sound file and decodes it into raw PCM bytes at the audio
// context's sample rate. The decoded data is cached by path.
// Supported formats: WAV (.wav), MP3 (.mp3), OGG Vorbis (.ogg) and Sun audio (.au).
//
// Without an audio context the file is only checked for existence and nil data is cached.
//
// Parameters:
//   - path: The file path to the sound resource (e.g., "assets/sounds/pop.wav").
//
// Returns:
//   - The decoded PCM data (16-bit little-endian stereo), or nil without an audio context.
//   - An error if the file cannot be read, the format is unsupported or decoding fails.
func (rm *ResourceManager) LoadSound(path string) ([]byte, error) {
	if cached, exists := rm.soundCache[path]; exists {
		return cached, nil
	}

	data, err := rm.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".ogg", ".au":
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg, .au)", ext)
	}

	if rm.audioContext == nil {
		rm.soundCache[path] = nil
		return nil, nil
	}

	pcm, err := decodeSound(ext, data, rm.audioContext.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}

	rm.soundCache[path] = pcm
	return pcm, nil
}

// decodeSound decodes an encoded audio file into PCM at the given sample rate.
func decodeSound(ext string, data []byte, sampleRate int) ([]byte, error) {
	reader := bytes.NewReader(data)

	var stream io.Reader
	switch ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, err
		}
		stream = s
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, err
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, err
		}
		stream = s
	case ".au":
		s, err := au.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, err
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	return io.ReadAll(stream)
}

// GetSoundData returns the decoded PCM data for a sound resource ID.
// Returns nil if the ID is unknown or the sound has not been loaded.
func (rm *ResourceManager) GetSoundData(soundID string) []byte {
	filePath, exists := rm.resourceMap[soundID]
	if !exists {
		return nil
	}
	return rm.soundCache[filePath]
}

// AudioContext returns the audio context used for decoding (may be nil).
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// DebugFont returns a text face of the given size backed by the Go Regular font.
// The font is compiled into the binary, so this never touches the filesystem.
func (rm *ResourceManager) DebugFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("goregular:%.1f", size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
// This must be called before using any ID-based loading methods.
//
// Parameters:
//   - configPath: Path to the YAML configuration file (e.g., "assets/config/resources.yaml")
//
// Returns:
//   - An error if the file cannot be read or parsed
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := rm.readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config: %d groups, %d resources",
		len(config.Groups), len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
// For example:
//
//	IMAGE_HANDLE -> assets/images/handle.png
//	SOUND_BURST  -> assets/sounds/pop.wav
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".ogg"
			}
			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// ResourcePath returns the resolved file path of a resource ID.
func (rm *ResourceManager) ResourcePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// Group returns a resource group from the loaded configuration.
func (rm *ResourceManager) Group(groupName string) (ResourceGroup, bool) {
	if rm.config == nil {
		return ResourceGroup{}, false
	}
	group, ok := rm.config.Groups[groupName]
	return group, ok
}

// GroupNames returns the configured group names in sorted order.
func (rm *ResourceManager) GroupNames() []string {
	if rm.config == nil {
		return nil
	}
	names := make([]string, 0, len(rm.config.Groups))
	for name := range rm.config.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadImageByID loads an image resource using its resource ID.
//
// Parameters:
//   - resourceID: The resource ID (e.g., "IMAGE_PUMP")
//
// Returns:
//   - A pointer to the loaded ebiten.Image
//   - An error if the ID is not found or the image cannot be loaded
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	if rm.config == nil {
		return nil
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// LoadResourceGroup loads all resources in a specified group.
// The first resource that fails to load aborts the whole group.
//
// Parameters:
//   - groupName: The name of the resource group (e.g., "init")
//
// Returns:
//   - An error if the group is not found or any resource fails to load
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	for _, sound := range group.Sounds {
		filePath, exists := rm.resourceMap[sound.ID]
		if !exists {
			return fmt.Errorf("sound resource ID not found: %s", sound.ID)
		}
		if _, err := rm.LoadSound(filePath); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	log.Printf("[ResourceManager] Loaded group %s: %d images, %d sounds",
		groupName, len(group.Images), len(group.Sounds))
	return nil
}
