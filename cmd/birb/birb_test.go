package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/birb-linux/birb"
	"github.com/birb-linux/birb/internal/birbtest"
	"github.com/google/go-cmp/cmp"
)

func setupSources(t *testing.T) []birb.Source {
	tmpdir := t.TempDir()
	core := filepath.Join(tmpdir, "core")
	extra := filepath.Join(tmpdir, "extra")
	birbtest.WriteSeed(t, core, "less", "NAME=\"less\"\nDEPENDS=\"ncurses pcre2\"\n")
	birbtest.WriteSeed(t, extra, "htop", "NAME=\"htop\"\nDEPENDS=\"ncurses\"\n")
	*sourcesPath = birbtest.WriteSources(t,
		"# name;url;path",
		"core;https://example.com/core;"+core,
		"extra;https://example.com/extra;"+extra,
	)
	srcs, err := loadSources()
	if err != nil {
		t.Fatal(err)
	}
	return srcs
}

func TestPrintSources(t *testing.T) {
	srcs := setupSources(t)

	var buf bytes.Buffer
	if err := printSources(&buf, false); err != nil {
		t.Fatal(err)
	}
	want := "Name: \tcore\nURL: \thttps://example.com/core\nPath: \t" + srcs[0].Path + "\n" +
		"\n" +
		"Name: \textra\nURL: \thttps://example.com/extra\nPath: \t" + srcs[1].Path + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("printSources: diff (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := printSources(&buf, true); err != nil {
		t.Fatal(err)
	}
	want = srcs[0].String() + "\n" + srcs[1].String() + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("printSources(raw): diff (-want +got):\n%s", diff)
	}
}

func TestLocate(t *testing.T) {
	srcs := setupSources(t)

	var buf bytes.Buffer
	if err := locate(&buf, srcs, []string{"htop", "less"}); err != nil {
		t.Fatal(err)
	}
	want := "htop: extra (" + srcs[1].Path + ")\n" +
		"less: core (" + srcs[0].Path + ")\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("locate: diff (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := locate(&buf, srcs, []string{"vim"}); err == nil {
		t.Fatal("locate(vim) unexpectedly succeeded")
	}
	if got, want := buf.String(), "vim: not found\n"; got != want {
		t.Fatalf("locate(vim): got %q, want %q", got, want)
	}
}

func TestPrintVar(t *testing.T) {
	srcs := setupSources(t)

	for _, tt := range []struct {
		pkg     string
		varName string
		want    string
	}{
		{pkg: "less", varName: "DEPENDS", want: "ncurses pcre2\n"},
		{pkg: "htop", varName: "DEPENDS", want: "ncurses\n"},
		{pkg: "htop", varName: "MISSING", want: "\n"},
	} {
		t.Run(tt.pkg+"/"+tt.varName, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printVar(&buf, srcs, tt.pkg, tt.varName); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("printVar(%s, %s) = %q, want %q", tt.pkg, tt.varName, got, tt.want)
			}
		})
	}

	if err := printVar(&bytes.Buffer{}, srcs, "vim", "DEPENDS"); err == nil {
		t.Fatal("printVar(vim) unexpectedly succeeded")
	}
}
