package guuid

import (
	"crypto/md5"
	"crypto/sha1"
)

// NewMD5 derives a version 3 UUID from data. The same data always yields the
// same UUID. No namespace is mixed in: callers that need one prepend it.
func NewMD5(data []byte) UUID {
	sum := md5.Sum(data)
	return fromDigest(sum[:], VersionMD5)
}

// NewSHA1 derives a version 5 UUID from the first 16 bytes of the SHA-1
// digest of data.
func NewSHA1(data []byte) UUID {
	sum := sha1.Sum(data)
	return fromDigest(sum[:], VersionSHA1)
}

func fromDigest(sum []byte, v Version) UUID {
	var uuid UUID
	copy(uuid[:], sum)
	uuid.stamp(v)
	return uuid
}
