package birb

import (
	"bytes"
	"testing"
)

func TestIsValid(t *testing.T) {
	for _, tt := range []struct {
		src          Source
		wantValid    bool
		wantComplete bool
	}{
		{
			src:          Source{},
			wantValid:    false,
			wantComplete: false,
		},

		{
			src:          Source{Name: "core"},
			wantValid:    true,
			wantComplete: false,
		},

		{
			src:          Source{Path: "/var/db/pkg/core"},
			wantValid:    true,
			wantComplete: false,
		},

		{
			src:          Source{Name: "core", URL: "https://example.com/core", Path: "/var/db/pkg/core"},
			wantValid:    true,
			wantComplete: true,
		},
	} {
		t.Run(tt.src.String(), func(t *testing.T) {
			if got, want := tt.src.IsValid(), tt.wantValid; got != want {
				t.Errorf("IsValid() = %v, want %v", got, want)
			}
			if got, want := tt.src.Complete(), tt.wantComplete; got != want {
				t.Errorf("Complete() = %v, want %v", got, want)
			}
		})
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	s := Source{Name: "core", URL: "https://example.com/core", Path: "/var/db/pkg/core"}
	if err := s.Print(&buf); err != nil {
		t.Fatal(err)
	}
	want := "Name: \tcore\nURL: \thttps://example.com/core\nPath: \t/var/db/pkg/core\n"
	if got := buf.String(); got != want {
		t.Fatalf("Print: got %q, want %q", got, want)
	}
}

func TestSeedPath(t *testing.T) {
	if got, want := SeedPath("/var/db/pkg/core", "less"), "/var/db/pkg/core/less/seed.sh"; got != want {
		t.Fatalf("SeedPath = %q, want %q", got, want)
	}
}
