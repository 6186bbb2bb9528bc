package rofiobsidian

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v66/github"
	"golang.org/x/mod/semver"
)

// Version is the running build's version, set at link time.
var Version = "dev"

const (
	repoOwner = "mtth"
	repoName  = "rofi-obsidian"
)

var (
	errReleaseCheckFailed = errors.New("release check failed")

	githubClient = github.NewClient(nil)
)

// LatestRelease returns the tag of the most recent published release.
func LatestRelease(ctx context.Context) (string, error) {
	rel, _, err := githubClient.Repositories.GetLatestRelease(ctx, repoOwner, repoName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errReleaseCheckFailed, err)
	}
	tag := rel.GetTagName()
	slog.Debug("Fetched latest release.", slog.String("tag", tag))
	return tag, nil
}

// IsOutdated returns true if latest is a newer semantic version than current. Development builds,
// whose version isn't valid semver, are never outdated.
func IsOutdated(current, latest string) bool {
	current, latest = canonicalVersion(current), canonicalVersion(latest)
	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return false
	}
	return semver.Compare(current, latest) < 0
}

func canonicalVersion(v string) string {
	if v != "" && v[0] != 'v' {
		return "v" + v
	}
	return v
}
