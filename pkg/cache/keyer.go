package cache

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey returns the key for one rendered sheet. contentHash covers
	// the card images and every job setting that affects the output.
	ArtifactKey(contentHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts distinguishes the artifacts rendered from one input.
type ArtifactKeyOpts struct {
	Side   string `json:"side"`   // "front" or "back"
	Format string `json:"format"` // "pdf" or "json"
}

// DefaultKeyer produces "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(contentHash string, opts ArtifactKeyOpts) string {
	return namespacedKey("artifact", contentHash, opts)
}
