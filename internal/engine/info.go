package engine

import (
	"github.com/bianoble/blaze/internal/config"
	"github.com/bianoble/blaze/internal/index"
)

// Info gathers display information. cfg and ix may be nil when the
// resources could not be loaded.
func Info(version string, cfg *config.Config, ix *index.Index, root, configPath, indexPath string) *InfoResult {
	r := &InfoResult{
		Version:    version,
		Root:       root,
		ConfigPath: configPath,
		IndexPath:  indexPath,
	}

	if ix != nil {
		r.Indexed = ix.Len()
	}

	if cfg != nil {
		for _, ext := range config.Extensions(cfg) {
			fi := FiletypeInfo{Ext: ext}
			for _, l := range cfg.Filetypes[ext] {
				fi.Lints = append(fi.Lints, l.Name)
			}
			r.Filetypes = append(r.Filetypes, fi)
		}
		r.Ignore = append(r.Ignore, cfg.GlobalIgnore...)
	}

	return r
}
