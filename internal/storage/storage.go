package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// Store is the object-storage surface the admin upload flow consumes: write
// bytes under a path, then hand back a public URL for that path.
type Store interface {
	Put(ctx context.Context, objectPath, contentType string, r io.Reader, size int64) error
	PublicURL(objectPath string) string
}

// Roles label what an uploaded file is for; the role doubles as the storage
// prefix so hero shots, gallery media and icons land in separate folders.
const (
	RoleHero    = "hero"
	RoleGallery = "gallery"
	RoleSkill   = "skill"
	RoleAbout   = "about"
)

func ValidRole(role string) bool {
	switch role {
	case RoleHero, RoleGallery, RoleSkill, RoleAbout:
		return true
	}
	return false
}

// ObjectPath derives a collision-resistant path for an upload from the
// current time plus the role label, keeping the original file extension.
func ObjectPath(role, filename string, now time.Time) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%d_%s%s", role, now.UnixMilli(), role, ext)
}
