package guuid

import "io"

// NewRandom generates a version 4 UUID from the generator's random source.
func (g *Generator) NewRandom() (UUID, error) {
	var uuid UUID
	if _, err := io.ReadFull(g.randReader, uuid[:]); err != nil {
		return Nil, err
	}
	uuid.stamp(VersionRandom)
	return uuid, nil
}

// NewRandomSeeded generates a version 4 UUID and mixes seed into it by XOR.
// XOR over each hex nibble is the same as XOR over each byte, so the text of
// the result is the digit-wise XOR of the two texts apart from the version and
// variant positions, which are stamped afterwards.
func (g *Generator) NewRandomSeeded(seed UUID) (UUID, error) {
	uuid, err := g.NewRandom()
	if err != nil {
		return Nil, err
	}
	for i := range uuid {
		uuid[i] ^= seed[i]
	}
	uuid.stamp(VersionRandom)
	return uuid, nil
}

// New generates a random (version 4) UUID using the default generator.
func New() (UUID, error) {
	return defaultGenerator.NewRandom()
}

// NewRandom is an alias for New() that names the version explicitly
func NewRandom() (UUID, error) {
	return defaultGenerator.NewRandom()
}
