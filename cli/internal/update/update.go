// Package update compares the running binary against the newest
// published release.
package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-version"

	"github.com/satishbabariya/spanned-go/cli/internal/ui"
)

// releaseEndpoint serves the newest release as JSON.
const releaseEndpoint = "https://api.github.com/repos/satishbabariya/spanned-go/releases/latest"

// CheckForUpdates fetches the newest release tag and prints how to
// upgrade when it is ahead of the running version.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", currentVersion, err)
	}

	tag, err := latestReleaseTag()
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}
	latest, err := version.NewVersion(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return fmt.Errorf("unexpected release tag %q: %w", tag, err)
	}

	if !current.LessThan(latest) {
		ui.PrintSuccess("spanned %s is up to date", currentVersion)
		return nil
	}

	ui.PrintWarning("spanned %s is available, running %s", latest, current)
	fmt.Printf("\n  go install github.com/satishbabariya/spanned-go/cli@v%s\n", latest)
	fmt.Printf("  or download %s\n", downloadURL(latest.String()))
	return nil
}

// latestReleaseTag asks the release endpoint for the newest tag name.
func latestReleaseTag() (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(releaseEndpoint)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release endpoint returned %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	if release.TagName == "" {
		return "", fmt.Errorf("release endpoint returned no tag")
	}
	return release.TagName, nil
}

// downloadURL names the prebuilt artifact for the running platform.
func downloadURL(ver string) string {
	return fmt.Sprintf("https://github.com/satishbabariya/spanned-go/releases/download/v%s/spanned-%s-%s",
		ver, runtime.GOOS, runtime.GOARCH)
}
