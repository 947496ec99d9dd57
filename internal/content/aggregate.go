package content

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/example/bhawani/internal/models"
)

// Source reads the active rows of every aggregated family.
type Source interface {
	ActiveAbout(ctx context.Context) (*models.AboutUsContent, error)
	Services(ctx context.Context) ([]models.Service, error)
	FeaturedProjects(ctx context.Context) ([]models.FeaturedProject, error)
	Clients(ctx context.Context) ([]models.Client, error)
	ActiveFooter(ctx context.Context) (*models.FooterContent, error)
	SocialLinks(ctx context.Context) ([]models.SocialLink, error)
}

// Collect reads all families concurrently and flattens them. Any failed read
// fails the whole collection; partial lists are never returned.
func Collect(ctx context.Context, src Source) ([]EditableItem, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.About, err = src.ActiveAbout(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Services, err = src.Services(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Projects, err = src.FeaturedProjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Clients, err = src.Clients(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Footer, err = src.ActiveFooter(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.SocialLinks, err = src.SocialLinks(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Flatten(snap), nil
}
