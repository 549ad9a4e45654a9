package mysql

const upsertRoomSQL = `
INSERT INTO rooms
  (position, name, room_key, nightly_price, image_ref, description)
VALUES
  (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name          = VALUES(name),
  room_key      = VALUES(room_key),
  nightly_price = VALUES(nightly_price),
  image_ref     = VALUES(image_ref),
  description   = VALUES(description),
  updated_at    = CURRENT_TIMESTAMP
`

const deleteRoomFeaturesSQL = `DELETE FROM room_features WHERE room_position = ?`

const insertRoomFeaturesPrefix = "INSERT INTO room_features\n  (room_position, ordinal, feature)\nVALUES "

const upsertAmenitySQL = `
INSERT INTO amenities
  (position, icon, name)
VALUES
  (?, ?, ?)
ON DUPLICATE KEY UPDATE
  icon       = VALUES(icon),
  name       = VALUES(name),
  updated_at = CURRENT_TIMESTAMP
`

const upsertFeatureSQL = `
INSERT INTO features
  (position, icon, title, description)
VALUES
  (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  icon        = VALUES(icon),
  title       = VALUES(title),
  description = VALUES(description),
  updated_at  = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// All read queries keep catalog order via position.
const listRoomsSQL = `
SELECT position, name, nightly_price, image_ref, description
FROM rooms
ORDER BY position
`

const listRoomFeaturesSQL = `
SELECT room_position, feature
FROM room_features
ORDER BY room_position, ordinal
`

const listAmenitiesSQL = `
SELECT icon, name
FROM amenities
ORDER BY position
`

const listFeaturesSQL = `
SELECT icon, title, description
FROM features
ORDER BY position
`
