package storage

import (
	"testing"
	"time"
)

func TestObjectPath(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	got := ObjectPath(RoleGallery, "Shot Final.MP4", now)
	want := "gallery/1700000000123_gallery.mp4"
	if got != want {
		t.Fatalf("ObjectPath = %q, want %q", got, want)
	}

	got = ObjectPath(RoleSkill, "icon", now)
	want = "skill/1700000000123_skill"
	if got != want {
		t.Fatalf("ObjectPath without extension = %q, want %q", got, want)
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleHero, RoleGallery, RoleSkill, RoleAbout} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false", role)
		}
	}
	for _, role := range []string{"", "avatar", "Gallery", "../etc"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true", role)
		}
	}
}
