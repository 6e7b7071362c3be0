package filesystem

import (
	"github.com/spf13/afero"

	"github.com/scopelink/scopelink/pkg/types"
)

// NewOS returns the production filesystem: an afero OsFs behind the
// adapter, so symlink calls take the real capability path.
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}
