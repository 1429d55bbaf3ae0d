package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/docscan-portal/internal/account/domain"
	pkgsql "github.com/klwxsrx/docscan-portal/pkg/sql"
)

var profileColumns = []string{
	"id",
	"subject_id",
	"email",
	"first_name",
	"last_name",
	"subscription_tier",
	"subscription_status",
	"subscription_id",
	"customer_id",
	"renews_at",
	"ends_at",
	"created_at",
	"updated_at",
}

type profileRepo struct {
	db pkgsql.Client
}

func NewProfileRepo(db pkgsql.Client) domain.ProfileRepo {
	return &profileRepo{db: db}
}

func (r *profileRepo) FindBySubject(ctx context.Context, subjectID string) ([]domain.Profile, error) {
	query, args, err := sq.
		Select(profileColumns...).
		From("profile").
		Where(sq.Eq{"subject_id": subjectID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var rows []sqlxProfile
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}

	result := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (r *profileRepo) Store(ctx context.Context, profile *domain.Profile) error {
	query, args, err := sq.
		Insert("profile").
		Columns(profileColumns...).
		Values(
			profile.ID,
			profile.SubjectID,
			profile.Email,
			profile.FirstName,
			profile.LastName,
			profile.SubscriptionTier,
			profile.SubscriptionStatus,
			profile.SubscriptionID,
			profile.CustomerID,
			profile.RenewsAt,
			profile.EndsAt,
			profile.CreatedAt,
			profile.UpdatedAt,
		).
		Suffix(`on conflict (id) do update set
			email = excluded.email,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			subscription_tier = excluded.subscription_tier,
			subscription_status = excluded.subscription_status,
			subscription_id = excluded.subscription_id,
			customer_id = excluded.customer_id,
			renews_at = excluded.renews_at,
			ends_at = excluded.ends_at,
			updated_at = excluded.updated_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

type sqlxProfile struct {
	ID                 uuid.UUID  `db:"id"`
	SubjectID          string     `db:"subject_id"`
	Email              string     `db:"email"`
	FirstName          *string    `db:"first_name"`
	LastName           *string    `db:"last_name"`
	SubscriptionTier   string     `db:"subscription_tier"`
	SubscriptionStatus string     `db:"subscription_status"`
	SubscriptionID     *string    `db:"subscription_id"`
	CustomerID         *string    `db:"customer_id"`
	RenewsAt           *time.Time `db:"renews_at"`
	EndsAt             *time.Time `db:"ends_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (p sqlxProfile) toDomain() domain.Profile {
	return domain.Profile{
		ID:                 p.ID,
		SubjectID:          p.SubjectID,
		Email:              p.Email,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		SubscriptionTier:   p.SubscriptionTier,
		SubscriptionStatus: p.SubscriptionStatus,
		SubscriptionID:     p.SubscriptionID,
		CustomerID:         p.CustomerID,
		RenewsAt:           p.RenewsAt,
		EndsAt:             p.EndsAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
