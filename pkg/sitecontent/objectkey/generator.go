package objectkey

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Generator defines the interface for object key generation strategies
type Generator interface {
	// GenerateKey creates a storage key for a media asset
	GenerateKey(assetID uuid.UUID, fileName string) string
}

// FlatGenerator stores every asset under a single media/ prefix.
type FlatGenerator struct{}

func NewFlatGenerator() *FlatGenerator {
	return &FlatGenerator{}
}

func (g *FlatGenerator) GenerateKey(assetID uuid.UUID, fileName string) string {
	if fileName != "" {
		return fmt.Sprintf("media/%s/%s", assetID, sanitizeFilename(fileName))
	}
	return fmt.Sprintf("media/%s", assetID)
}

// ShardedGenerator uses Git-style sharding to keep listing cost flat as
// the asset count grows: media/objects/ab/cd1234ef5678_filename.
type ShardedGenerator struct {
	// ShardLength controls how many characters to use for sharding (default: 2)
	ShardLength int
}

func NewShardedGenerator() *ShardedGenerator {
	return &ShardedGenerator{ShardLength: 2}
}

func (g *ShardedGenerator) GenerateKey(assetID uuid.UUID, fileName string) string {
	idStr := strings.ReplaceAll(assetID.String(), "-", "")

	shardLen := g.ShardLength
	if shardLen <= 0 || shardLen >= len(idStr) {
		shardLen = 2
	}
	shardDir := idStr[:shardLen]
	remaining := idStr[shardLen:]

	name := remaining
	if fileName != "" {
		name = fmt.Sprintf("%s_%s", remaining, sanitizeFilename(fileName))
	}

	return fmt.Sprintf("media/objects/%s/%s", shardDir, name)
}

// sanitizeFilename strips path components and characters that are
// unsafe in object keys, preserving the extension.
func sanitizeFilename(fileName string) string {
	name := path.Base(fileName)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := b.String()
	if out == "" || out == "." || out == ".." {
		return "file"
	}
	return out
}
