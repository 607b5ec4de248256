package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Kallyan98/Hotel-Recommender-System/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertOffer(ctx context.Context, o domain.Offer) error {
	amen, _ := json.Marshal(o.Amenities)
	sights, _ := json.Marshal(o.Sightseeing)
	_, err := r.db.ExecContext(ctx, upsertOfferSQL,
		o.Name,
		o.PriceAdult,
		o.PriceChild,
		o.Currency,
		o.Rating,
		o.Location,
		string(amen),
		string(sights),
	)
	return err
}

func (r *Repo) GetOffer(ctx context.Context, name string) (domain.Offer, error) {
	row := r.db.QueryRowContext(ctx, getOfferSQL, name)
	o, err := scanOffer(row)
	if err == sql.ErrNoRows {
		return domain.Offer{}, domain.ErrNotFound
	}
	return o, err
}

func (r *Repo) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	rows, err := r.db.QueryContext(ctx, listOffersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanOffer(row rowScanner) (domain.Offer, error) {
	var o domain.Offer
	var amenitiesJSON, sightseeingJSON []byte
	if err := row.Scan(
		&o.Name,
		&o.PriceAdult,
		&o.PriceChild,
		&o.Currency,
		&o.Rating,
		&o.Location,
		&amenitiesJSON,
		&sightseeingJSON,
	); err != nil {
		return domain.Offer{}, err
	}
	// sightseeing keeps its stored order; display order matters downstream
	_ = json.Unmarshal(amenitiesJSON, &o.Amenities)
	_ = json.Unmarshal(sightseeingJSON, &o.Sightseeing)
	return o, nil
}
