// Package version records the identity stamped into the spanned binary
// at build time.
package version

import (
	"fmt"
	"runtime"
)

// Stamped via -ldflags="-X ..." at release time. Development builds
// keep the defaults.
var (
	// Number is the release number, without the v prefix.
	Number = "0.1.0"
	// Commit is the hash the binary was built from.
	Commit = "dev"
	// Date is the build timestamp.
	Date = "unknown"
)

// Info is the resolved build identity.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the stamped identity.
func Get() Info {
	return Info{Version: Number, Commit: Commit, Date: Date}
}

// String is the one line form shown in logs and headers.
func (i Info) String() string {
	return fmt.Sprintf("spanned %s (%s)", i.Version, i.Commit)
}

// FullString lays out the identity together with the toolchain and
// platform the binary was built for.
func (i Info) FullString() string {
	return fmt.Sprintf(`spanned %s
  commit:   %s
  built:    %s
  go:       %s
  platform: %s/%s`,
		i.Version, i.Commit, i.Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
