package updates

import (
	"context"
	"log"
	"strings"

	"github.com/google/go-github/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	version "github.com/hashicorp/go-version"
	"github.com/pkg/errors"
)

// Checker looks up the latest release of a GitHub repository.
// Responses are cached on disk under CachePath.
type Checker struct {
	Owner     string
	Repo      string
	CachePath string
}

// UpdateAvailable determines if a release newer than currentVersion exists.
// The latest version is returned along with the result.
func (c Checker) UpdateAvailable(ctx context.Context, currentVersion string) (bool, string, error) {
	diskCache := diskcache.New(c.CachePath)
	transport := httpcache.NewTransport(diskCache)
	client := github.NewClient(transport.Client())

	release, _, err := client.Repositories.GetLatestRelease(ctx, c.Owner, c.Repo)
	if err != nil {
		// Log, but don't return rate limit errors
		if _, ok := err.(*github.RateLimitError); ok {
			log.Printf("Rate limit error when requesting latest version %v", err)
			return false, "", nil
		}
		return false, "", errors.WithStack(err)
	}

	latestVersion := strings.TrimPrefix(release.GetTagName(), "v")
	log.Printf("Comparing latest release %v, to current version %v\n", latestVersion, currentVersion)

	newer, err := IsNewer(currentVersion, latestVersion)
	return newer, latestVersion, errors.WithStack(err)
}

// IsNewer returns true if latest is a later version than current.
// An unparseable current version is always considered out of date.
func IsNewer(current, latest string) (bool, error) {
	lv, err := version.NewVersion(latest)
	if err != nil {
		return false, errors.WithMessage(err, "latest version")
	}
	cv, err := version.NewVersion(current)
	if err != nil {
		return true, errors.WithMessage(err, "current version")
	}
	return cv.LessThan(lv), nil
}
