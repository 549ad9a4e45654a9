package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"valk_landing/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

var _ domain.CatalogRepository = (*Repo)(nil)

// UpsertRoom writes the room and replaces its feature list in one transaction.
func (r *Repo) UpsertRoom(ctx context.Context, position int, room domain.RoomOffering) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, upsertRoomSQL,
		position,
		room.Name,
		room.Key(),
		room.NightlyPrice,
		room.ImageRef,
		room.Description,
	); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, deleteRoomFeaturesSQL, position); err != nil {
		return err
	}
	if len(room.Features) > 0 {
		values := make([]string, 0, len(room.Features))
		args := make([]any, 0, len(room.Features)*3) // 3 params per row
		for i, f := range room.Features {
			values = append(values, "(?,?,?)")
			args = append(args, position, i, f)
		}
		if _, err = tx.ExecContext(ctx, insertRoomFeaturesPrefix+strings.Join(values, ","), args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repo) UpsertAmenity(ctx context.Context, position int, a domain.AmenityEntry) error {
	_, err := r.db.ExecContext(ctx, upsertAmenitySQL, position, a.Icon, a.Name)
	return err
}

func (r *Repo) UpsertFeature(ctx context.Context, position int, f domain.FeatureHighlight) error {
	_, err := r.db.ExecContext(ctx, upsertFeatureSQL, position, f.Icon, f.Title, f.Description)
	return err
}

// LoadCatalog reads rooms, amenities and features in position order. Contact
// details are not stored and come back empty.
func (r *Repo) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	var c domain.Catalog

	rooms, err := r.listRooms(ctx)
	if err != nil {
		return c, fmt.Errorf("rooms: %w", err)
	}
	c.Rooms = rooms

	rows, err := r.db.QueryContext(ctx, listAmenitiesSQL)
	if err != nil {
		return c, fmt.Errorf("amenities: %w", err)
	}
	for rows.Next() {
		var a domain.AmenityEntry
		if err := rows.Scan(&a.Icon, &a.Name); err != nil {
			rows.Close()
			return c, fmt.Errorf("amenities: %w", err)
		}
		c.Amenities = append(c.Amenities, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return c, fmt.Errorf("amenities: %w", err)
	}

	rows, err = r.db.QueryContext(ctx, listFeaturesSQL)
	if err != nil {
		return c, fmt.Errorf("features: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var f domain.FeatureHighlight
		if err := rows.Scan(&f.Icon, &f.Title, &f.Description); err != nil {
			return c, fmt.Errorf("features: %w", err)
		}
		c.Features = append(c.Features, f)
	}
	if err := rows.Err(); err != nil {
		return c, fmt.Errorf("features: %w", err)
	}
	return c, nil
}

func (r *Repo) listRooms(ctx context.Context) ([]domain.RoomOffering, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, err
	}
	var (
		rooms []domain.RoomOffering
		index = map[int]int{} // position -> slice index
	)
	for rows.Next() {
		var pos int
		var room domain.RoomOffering
		if err := rows.Scan(&pos, &room.Name, &room.NightlyPrice, &room.ImageRef, &room.Description); err != nil {
			rows.Close()
			return nil, err
		}
		index[pos] = len(rooms)
		rooms = append(rooms, room)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	frows, err := r.db.QueryContext(ctx, listRoomFeaturesSQL)
	if err != nil {
		return nil, err
	}
	defer frows.Close()
	for frows.Next() {
		var pos int
		var feature string
		if err := frows.Scan(&pos, &feature); err != nil {
			return nil, err
		}
		if i, ok := index[pos]; ok {
			rooms[i].Features = append(rooms[i].Features, feature)
		}
	}
	return rooms, frows.Err()
}
