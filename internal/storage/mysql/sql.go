package mysql

const upsertOfferSQL = `
INSERT INTO offers
  (name, price_adult, price_child, currency, rating, location, amenities, sightseeing)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  price_adult = VALUES(price_adult),
  price_child = VALUES(price_child),
  currency    = VALUES(currency),
  rating      = VALUES(rating),
  location    = VALUES(location),
  amenities   = VALUES(amenities),
  sightseeing = VALUES(sightseeing),
  updated_at  = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getOfferSQL = `
SELECT
  name,
  price_adult,
  price_child,
  currency,
  rating,
  location,
  amenities,
  sightseeing
FROM offers
WHERE name = ?
`

const listOffersSQL = `
SELECT
  name,
  price_adult,
  price_child,
  currency,
  rating,
  location,
  amenities,
  sightseeing
FROM offers
ORDER BY name
`
