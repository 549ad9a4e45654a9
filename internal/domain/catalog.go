package domain

import "strings"

type RoomOffering struct {
	Name         string
	NightlyPrice string // display string, e.g. "€89"
	ImageRef     string
	Features     []string
	Description  string
}

// Key is the booking form value for this room.
func (r RoomOffering) Key() string { return RoomKey(r.Name) }

// RoomKey lowercases a room name and replaces its first space with a dash.
func RoomKey(name string) string {
	return strings.Replace(strings.ToLower(name), " ", "-", 1)
}

type AmenityEntry struct {
	Icon string
	Name string
}

type FeatureHighlight struct {
	Icon        string
	Title       string
	Description string
}

type ContactDetails struct {
	Address []string
	Phone   []string
	Email   []string
}

// Catalog is the static page content. It is built once at startup and never mutated.
type Catalog struct {
	Rooms     []RoomOffering
	Amenities []AmenityEntry
	Features  []FeatureHighlight
	Contact   ContactDetails
}

// DefaultRoomKey is the room preselected in a fresh booking form.
func (c Catalog) DefaultRoomKey() string {
	if len(c.Rooms) == 0 {
		return ""
	}
	return c.Rooms[0].Key()
}
