package middleware

import (
	"context"
	"testing"
	"testing/fstest"
)

func TestComputeFileHash(t *testing.T) {
	fsys := fstest.MapFS{
		"css/test.css": {Data: []byte("body { color: red; }")},
	}

	// Test with existing file
	hash := computeFileHash(fsys, "css/test.css")
	if hash == "" {
		t.Error("expected a hash, got empty string")
	}
	if len(hash) != 8 {
		t.Errorf("expected hash length 8, got %d", len(hash))
	}

	// Test with non-existent file
	hash = computeFileHash(fsys, "css/missing.css")
	if hash != "" {
		t.Errorf("expected empty hash for non-existent file, got %s", hash)
	}
}

func TestComputeAssetVersions(t *testing.T) {
	fsys := fstest.MapFS{
		AssetCSS: {Data: []byte("css")},
	}

	versions := computeAssetVersions(fsys, AssetCSS, AssetJS)
	if versions[AssetCSS] == "1" {
		t.Error("expected computed CSS version, got default '1'")
	}
	if versions[AssetJS] != "1" {
		t.Errorf("expected default version '1' for missing JS, got %s", versions[AssetJS])
	}
}

func TestGetAssetVersion(t *testing.T) {
	InitAssetVersions(fstest.MapFS{
		AssetCSS: {Data: []byte("css")},
	})

	ctx := context.Background()
	if v := GetAssetVersion(ctx, AssetCSS); v == "" {
		t.Error("GetAssetVersion returned empty string")
	}
	if v := GetAssetVersion(ctx, "js/nonexistent.js"); v != "1" {
		t.Errorf("expected default version '1' for unknown asset, got %s", v)
	}
}
