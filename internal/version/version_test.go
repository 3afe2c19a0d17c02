package version

import "testing"

func TestResolvePrefersLdflags(t *testing.T) {
	prevV, prevC := Version, Commit
	t.Cleanup(func() { Version, Commit = prevV, prevC })

	Version = "v1.2.3"
	Commit = "0123456789abcdef0123"
	info := Resolve()
	if info.Version != "v1.2.3" || info.Commit != Commit {
		t.Fatalf("unexpected info: %+v", info)
	}
	if got := String(); got != "v1.2.3 (0123456789ab)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	prevV := Version
	t.Cleanup(func() { Version = prevV })

	Version = ""
	if Resolve().Version == "" {
		t.Fatal("expected a fallback version")
	}
}
