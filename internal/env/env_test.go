package env

import "testing"

func TestFindSourcesConfig(t *testing.T) {
	t.Setenv("BIRB_SOURCES", "")
	if got, want := findSourcesConfig(), DefaultSourcesConfig; got != want {
		t.Errorf("findSourcesConfig() = %q, want %q", got, want)
	}

	t.Setenv("BIRB_SOURCES", "/tmp/birb-sources.conf")
	if got, want := findSourcesConfig(), "/tmp/birb-sources.conf"; got != want {
		t.Errorf("findSourcesConfig() = %q, want %q", got, want)
	}
}
