// Package store reads active content rows and applies single-column edits.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/example/bhawani/internal/models"
)

// ErrNotFound is returned when an update matches no row.
var ErrNotFound = errors.New("record not found")

// Store wraps the shared connection pool. Every call acquires a connection
// for the duration of one statement and releases it before returning.
type Store struct {
	db *gorm.DB
}

// New constructs a Store over db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// activeSingleton loads the first active row into dest and reports whether one existed.
func (s *Store) activeSingleton(ctx context.Context, dest interface{}, order string) (bool, error) {
	query := s.db.WithContext(ctx).Where("active = ?", true)
	if order != "" {
		query = query.Order(order)
	}
	result := query.Limit(1).Find(dest)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func listActive[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var rows []T
	if err := db.WithContext(ctx).
		Where("active = ?", true).
		Order("display_order ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ActiveHero returns the most recently updated active hero row, or nil.
func (s *Store) ActiveHero(ctx context.Context) (*models.HeroContent, error) {
	var row models.HeroContent
	found, err := s.activeSingleton(ctx, &row, "updated_at DESC")
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

// ActiveAbout returns the active about row, or nil.
func (s *Store) ActiveAbout(ctx context.Context) (*models.AboutUsContent, error) {
	var row models.AboutUsContent
	found, err := s.activeSingleton(ctx, &row, "")
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

// ActiveServicesContent returns the services heading row, or nil.
func (s *Store) ActiveServicesContent(ctx context.Context) (*models.ServicesContent, error) {
	var row models.ServicesContent
	found, err := s.activeSingleton(ctx, &row, "")
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

// ActiveContactContent returns the contact section copy, or nil.
func (s *Store) ActiveContactContent(ctx context.Context) (*models.ContactContent, error) {
	var row models.ContactContent
	found, err := s.activeSingleton(ctx, &row, "")
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

// ActiveFooter returns the active footer row, or nil.
func (s *Store) ActiveFooter(ctx context.Context) (*models.FooterContent, error) {
	var row models.FooterContent
	found, err := s.activeSingleton(ctx, &row, "")
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (s *Store) AboutStatistics(ctx context.Context) ([]models.AboutStatistic, error) {
	return listActive[models.AboutStatistic](ctx, s.db)
}

func (s *Store) Services(ctx context.Context) ([]models.Service, error) {
	return listActive[models.Service](ctx, s.db)
}

func (s *Store) FeaturedProjects(ctx context.Context) ([]models.FeaturedProject, error) {
	return listActive[models.FeaturedProject](ctx, s.db)
}

func (s *Store) Clients(ctx context.Context) ([]models.Client, error) {
	return listActive[models.Client](ctx, s.db)
}

func (s *Store) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return listActive[models.Testimonial](ctx, s.db)
}

func (s *Store) ContactDetails(ctx context.Context) ([]models.ContactDetail, error) {
	return listActive[models.ContactDetail](ctx, s.db)
}

func (s *Store) WorkingHours(ctx context.Context) ([]models.WorkingHours, error) {
	return listActive[models.WorkingHours](ctx, s.db)
}

func (s *Store) SocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	return listActive[models.SocialLink](ctx, s.db)
}

// CreateContactMessage appends msg to the contact log and fills in its ID.
func (s *Store) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	return s.db.WithContext(ctx).Create(msg).Error
}
