package geocode

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ZipDB resolves ZIP codes from a read-only SQLite table:
//
//	CREATE TABLE zipcodes (
//		zipcode TEXT PRIMARY KEY,
//		city TEXT NOT NULL,
//		state TEXT NOT NULL,
//		latitude REAL NOT NULL,
//		longitude REAL NOT NULL
//	)
type ZipDB struct {
	db *sql.DB
}

// OpenZipDB opens the SQLite database at path.
func OpenZipDB(path string) (*ZipDB, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("opening zipcode database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening zipcode database: %w", err)
	}
	return &ZipDB{db: db}, nil
}

func (z *ZipDB) Close() error {
	return z.db.Close()
}

func (z *ZipDB) Resolve(ctx context.Context, zip string) (*Place, error) {
	zip, ok := normalize(zip)
	if !ok {
		return nil, fmt.Errorf("zip %q: %w", zip, ErrNotFound)
	}
	// ZIP+4 rows are stored under the five digit code.
	short := zip[:5]

	place := Place{Zip: zip}
	err := z.db.QueryRowContext(ctx,
		"SELECT city, state, latitude, longitude FROM zipcodes WHERE zipcode = ?",
		short,
	).Scan(&place.City, &place.State, &place.Latitude, &place.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("zip %q: %w", zip, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying zipcode: %w", err)
	}
	return &place, nil
}
