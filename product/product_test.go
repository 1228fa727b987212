package product

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	// 验证版本号格式（应该是 x.x.x 格式）
	parts := strings.Split(Version, ".")
	if len(parts) != 3 {
		t.Errorf("Version should be in x.x.x format, got %s", Version)
	}
}

func TestVersionID(t *testing.T) {
	if VersionID <= 0 {
		t.Errorf("VersionID should be positive, got %d", VersionID)
	}
}
