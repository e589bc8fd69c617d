package bundler

import "github.com/pjordaan/asset-lib/internal/berrors"

// writeFile ensures target's parent directory exists and writes content
// to it atomically via the configured iofs.FS, per spec section 7: "the
// writer writes to the final path in one call; on exception, prior
// outputs from this run remain, but the aborted output is not created."
func (d *Driver) writeFile(target string, content string) error {
	if err := d.fs.WriteFile(target, []byte(content)); err != nil {
		return &berrors.IOError{Path: target, Op: "write", Err: err}
	}
	d.log.AddDebug("wrote artifact", map[string]string{"path": target})
	return nil
}
