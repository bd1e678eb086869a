// Package registry implements the generic entity registry behind every venue
// directory (catalog, artists, dressing rooms, requests, shopping lists).
//
// # Semantics
//
// A Registry owns an ordered slice of records plus a nextID counter:
//   - Create assigns nextID, appends, returns the id, then advances the counter
//   - FindByID / FindFirst / FindBy are linear scans returning live records
//   - DeleteByID removes every record with the id (at most one in practice)
//   - List / Snapshot return deep copies; mutating them never reaches the registry
//   - Update reports absence with false instead of an error
//
// Absence is never an error at this layer. The directories built on top
// translate it into their own not-found errors (domain.ErrArtistNotFound and
// friends) so messages stay specific to the domain.
//
// Registries are not safe for concurrent use. internal/app owns the single
// instance of each and drives them from one goroutine.
package registry
