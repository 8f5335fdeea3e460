package fuzzy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/blang/semver"
)

// githubAPI is the base URL for GitHub API requests. Variable so tests can
// point it at a local server.
var githubAPI = "https://api.github.com"

// GitHubRelease describes a project release on GitHub.
type GitHubRelease struct {
	DataURL    string `json:"url"`
	URL        string `json:"html_url"`
	Name       string `json:"name"`
	Prerelease bool   `json:"prerelease"`
	Tag        string `json:"tag_name"`
	Version    semver.Version
	Created    time.Time `json:"created_at"`
	Published  time.Time `json:"published_at"`
	Assets     []struct {
		URL         string `json:"url"`
		Name        string `json:"name"`
		DownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// IsNewer returns true if this release is newer than a given semver string.
func (g *GitHubRelease) IsNewer(ver string) (isNewer bool, err error) {
	var version semver.Version
	if version, err = semver.ParseTolerant(ver); err != nil {
		return
	}
	isNewer = g.Version.GT(version)
	return
}

// LatestRelease returns the most recent non-prerelease version of a GitHub
// repository.
func LatestRelease(ctx context.Context, owner, repo string) (*GitHubRelease, error) {
	releases, err := getReleases(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	for i := range releases {
		if !releases[i].Prerelease {
			return &releases[i], nil
		}
	}

	return nil, fmt.Errorf("no releases found for %s/%s", owner, repo)
}

// support ---------------------------------------------------------------

func getReleases(ctx context.Context, owner, repo string) (releases []GitHubRelease, err error) {
	var data []byte
	if data, err = get(ctx, fmt.Sprintf("%s/repos/%s/%s/releases", githubAPI, owner, repo)); err != nil {
		return
	}

	if err = json.Unmarshal(data, &releases); err != nil {
		return
	}

	for i := range releases {
		releases[i].Version, _ = semver.ParseTolerant(releases[i].Tag)
	}

	sort.Sort(byVersion(releases))

	return
}

func get(ctx context.Context, requestURL string) (data []byte, err error) {
	dlog.Printf("GET %s", requestURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return
	}

	var resp *http.Response
	if resp, err = http.DefaultClient.Do(req); err != nil {
		return
	}
	defer resp.Body.Close()

	if data, err = io.ReadAll(resp.Body); err != nil {
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		err = fmt.Errorf("GET %s: %s", requestURL, resp.Status)
	}

	return
}

type byVersion []GitHubRelease

func (b byVersion) Len() int {
	return len(b)
}

func (b byVersion) Less(i, j int) bool {
	return b[i].Version.GT(b[j].Version)
}

func (b byVersion) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}
