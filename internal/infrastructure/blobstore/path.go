package blobstore

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedPath = errors.New("malformed blob path")

// Path addresses an object as <scheme>://<bucket>/<key>.
type Path struct {
	Scheme string
	Bucket string
	Key    string
}

func (p Path) String() string {
	return p.Scheme + "://" + p.Bucket + "/" + p.Key
}

func ParsePath(raw, scheme string) (Path, error) {
	prefix := scheme + "://"

	rest, ok := strings.CutPrefix(raw, prefix)
	if !ok {
		return Path{}, fmt.Errorf("%w: %q must start with %q", ErrMalformedPath, raw, prefix)
	}

	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return Path{}, fmt.Errorf("%w: %q must contain a bucket and a key", ErrMalformedPath, raw)
	}

	return Path{Scheme: scheme, Bucket: bucket, Key: key}, nil
}
