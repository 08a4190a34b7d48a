package classifier

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"restaurant-bot/pkg/log"
)

// LegacyArtifact is the pre-ensemble file name, registered as "lr" when no
// dedicated lr artifact exists.
const LegacyArtifact = "intent_model.json"

// LoadOptions locates the artifacts.
type LoadOptions struct {
	Dir string
	// DefaultAlgo overrides the default handle when it is loaded.
	DefaultAlgo string
}

// ArtifactPath returns the file name of the artifact for id.
func ArtifactPath(dir, id string) string {
	return filepath.Join(dir, "intent_model_"+id+".json")
}

// ReadArtifact reads, validates and builds the handle stored at path.
func ReadArtifact(id, path string) (Handle, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Handle{}, err
	}
	a, err := ParseArtifact(b)
	if err != nil {
		return Handle{}, fmt.Errorf("%s: %w", path, err)
	}
	m, err := NewModel(a)
	if err != nil {
		return Handle{}, fmt.Errorf("%s: %w", path, err)
	}
	return NewHandle(id, a.Kind, m), nil
}

// Load reads every canonical artifact under opt.Dir. Artifacts that are
// missing or invalid are skipped and logged; ErrNoClassifiersAvailable is
// returned when nothing loads.
func Load(ctx context.Context, opt LoadOptions, l log.Logger) (*Registry, error) {
	var handles []Handle
	have := make(map[string]bool)

	for _, id := range CanonicalOrder {
		h, err := ReadArtifact(id, ArtifactPath(opt.Dir, id))
		if err != nil {
			logSkipped(ctx, l, id, err)
			continue
		}
		handles = append(handles, h)
		have[id] = true
	}

	if !have[AlgoLR] {
		h, err := ReadArtifact(AlgoLR, filepath.Join(opt.Dir, LegacyArtifact))
		if err != nil {
			logSkipped(ctx, l, "legacy", err)
		} else {
			handles = append([]Handle{h}, handles...)
		}
	}

	reg, err := NewRegistry(handles...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opt.Dir, err)
	}

	if opt.DefaultAlgo != "" {
		withDef, err := reg.WithDefault(opt.DefaultAlgo)
		if err != nil {
			l.Warnf(ctx, "%s: default algo %q not loaded, keeping %q", logPrefixLoad, opt.DefaultAlgo, reg.DefaultID())
		} else {
			reg = withDef
		}
	}

	l.Infof(ctx, "%s: loaded %v, default %q", logPrefixLoad, reg.IDs(), reg.DefaultID())
	return reg, nil
}

func logSkipped(ctx context.Context, l log.Logger, id string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		l.Debugf(ctx, "%s: no %s artifact", logPrefixLoad, id)
		return
	}
	l.Warnf(ctx, "%s: excluding %s: %v", logPrefixLoad, id, err)
}
