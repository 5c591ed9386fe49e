package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"

	"github.com/colorstacknyu/colorstack-site/internal/domain"
	apperrors "github.com/colorstacknyu/colorstack-site/internal/errors"
)

// GitHubSource reads resources.json as committed to a repository
type GitHubSource struct {
	client *github.Client
	owner  string
	repo   string
	path   string
	ref    string
}

// NewGitHubSource creates a source for repoSpec ("owner/repo").
// An empty token reads public repositories anonymously.
func NewGitHubSource(token, repoSpec, path, ref string) (*GitHubSource, error) {
	owner, repo, ok := strings.Cut(repoSpec, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("repository must be owner/repo, got %q", repoSpec))
	}
	if path == "" {
		path = "public/resources.json"
	}

	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		hc = oauth2.NewClient(context.Background(), ts)
	}

	return &GitHubSource{
		client: github.NewClient(hc),
		owner:  owner,
		repo:   repo,
		path:   path,
		ref:    ref,
	}, nil
}

// String names the file for messages
func (s *GitHubSource) String() string {
	name := fmt.Sprintf("github.com/%s/%s/%s", s.owner, s.repo, s.path)
	if s.ref != "" {
		name += "@" + s.ref
	}
	return name
}

// Fetch downloads and parses the file
func (s *GitHubSource) Fetch(ctx context.Context) ([]domain.Resource, error) {
	var opts *github.RepositoryContentGetOptions
	if s.ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: s.ref}
	}

	file, _, _, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, s.path, opts)
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil {
			switch ghErr.Response.StatusCode {
			case http.StatusNotFound:
				return nil, apperrors.NewNotFoundError("resources file not found on GitHub", s.String(), err)
			case http.StatusUnauthorized:
				return nil, apperrors.NewUnauthorizedError("GitHub rejected the token", "Check GITHUB_TOKEN", err)
			}
		}
		return nil, apperrors.NewUpstreamError("failed to fetch resources from GitHub", err)
	}
	if file == nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("%s is a directory", s.String()))
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to decode resources from GitHub", err)
	}

	slog.Debug("fetched resources from github", "source", s.String(), "sha", file.GetSHA(), "bytes", len(content))
	return Parse([]byte(content))
}
