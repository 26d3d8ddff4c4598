// Package guuid provides 128-bit identifiers with storage-aware ordering.
//
// A UUID is an immutable 16-byte value. Besides random (version 4) and
// name-based (version 3 and 5) UUIDs, the package generates sequential UUIDs:
// a time field is embedded in an otherwise random value so that generation
// order and index order coincide. Which bytes a database treats as most
// significant differs between engines, so the time field is placed according
// to a Comparator:
//   - ComparatorDefault: bytes compared left to right (MySQL BINARY(16), bytea)
//   - ComparatorSQLServer: SQL Server uniqueidentifier ordering
//   - ComparatorMongoDB: MongoDB binary subtype 4 ordering
//
// Basic Usage:
//
//	// Generate a sequential UUID for a SQL Server clustered index
//	id, err := guuid.NewSequential(guuid.ComparatorSQLServer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id)                           // XXXXXXXX-XXXX-8XXX-XXXX-XXXXXXXXXXXX
//	fmt.Println(id.Encode(guuid.StyleBase64)) // 22 URL-safe Base64 characters
//
//	// Parse any supported notation
//	id, err = guuid.Parse("{f47ac10b-58cc-4372-a567-0e02b2c3d479}")
//
//	// Sort under the engine's rule
//	guuid.ComparatorSQLServer.Sort(ids)
//
// Custom Generator:
//
//	gen := guuid.NewGenerator(guuid.WithClock(clock))
//	id, err := gen.NewSequential(guuid.ComparatorMongoDB)
//
// Byte Order:
//
// Bytes are held in storage order: the first three groups of the canonical
// text are little-endian, the remaining eight bytes are in text order. The
// version nibble is therefore the high nibble of byte 7. FromRFC4122 and
// UUID.RFC4122 convert to and from network order.
//
// Thread Safety:
//
// Generators hold no mutable state. All functions and methods may be called
// concurrently from multiple goroutines.
//
// Sequential Range:
//
// The time field stores 61 bits of 100 ns ticks since the Unix epoch, covering
// 1970-01-01 through 9276-12-03. The high 48 bits occupy the six bytes the
// comparator ranks first; the low 13 bits follow in the next bytes, skipping
// the version and variant bits. Instants outside that window are rejected
// with a *RangeError.
package guuid
