package tui

import (
	"context"

	"github.com/vovakirdan/tui-runner/internal/client"
	"github.com/vovakirdan/tui-runner/internal/leaderboard"
)

// Backend is where a finished run is submitted and the leaderboard read.
type Backend interface {
	Submit(ctx context.Context, name string, score int) error
	Leaderboard(ctx context.Context) ([]leaderboard.Row, error)
	ShareLink() string
}

// RemoteBackend talks to a score server over HTTP.
type RemoteBackend struct {
	client    *client.Client
	shareBase string
}

// NewRemoteBackend creates a backend for c. shareBase defaults to the
// server address.
func NewRemoteBackend(c *client.Client, shareBase string) *RemoteBackend {
	if shareBase == "" {
		shareBase = c.BaseURL()
	}
	return &RemoteBackend{client: c, shareBase: shareBase}
}

func (b *RemoteBackend) Submit(ctx context.Context, name string, score int) error {
	return b.client.Submit(ctx, name, score)
}

func (b *RemoteBackend) Leaderboard(ctx context.Context) ([]leaderboard.Row, error) {
	return b.client.Leaderboard(ctx)
}

func (b *RemoteBackend) ShareLink() string {
	return client.ShareLink(b.shareBase)
}

// LocalBackend writes straight to a leaderboard service. SSH sessions use
// it with the session's remote address; offline play uses loopback.
type LocalBackend struct {
	scores    *leaderboard.Service
	ip        string
	shareBase string
}

// NewLocalBackend creates a backend that records submissions from ip.
func NewLocalBackend(svc *leaderboard.Service, ip, shareBase string) *LocalBackend {
	return &LocalBackend{scores: svc, ip: ip, shareBase: shareBase}
}

func (b *LocalBackend) Submit(ctx context.Context, name string, score int) error {
	_, err := b.scores.Submit(ctx, leaderboard.Submission{
		Name:  leaderboard.NameOrAnonymous(name),
		Score: score,
	}, b.ip)
	return err
}

func (b *LocalBackend) Leaderboard(ctx context.Context) ([]leaderboard.Row, error) {
	return b.scores.Top(ctx)
}

func (b *LocalBackend) ShareLink() string {
	if b.shareBase == "" {
		return ""
	}
	return client.ShareLink(b.shareBase)
}
