package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{"successful write", []byte("hello world\n"), 0o644},
		{"empty data", []byte{}, 0o644},
		{"binary data", []byte{0x00, 0x01, 0x02, 0xFF}, 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test-file")

			if err := AtomicWriteFile(path, tt.data, tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading file: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stating file: %v", err)
			}
			if gotPerm := info.Mode().Perm(); gotPerm != tt.perm {
				t.Errorf("permissions = %o, want %o", gotPerm, tt.perm)
			}
		})
	}
}

func TestAtomicWriteFile_DirectoryNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "file.txt")
	if err := AtomicWriteFile(path, []byte("x"), 0o644); err == nil {
		t.Error("AtomicWriteFile() should fail when the directory is missing")
	}
}

func TestAtomicWriteFile_OverwriteLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sets.yaml")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWriteFile(path, []byte("new"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want new", got)
	}
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".slotcheck-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

type doc struct {
	Version int                 `yaml:"version" toml:"version" json:"version"`
	Sets    map[string][]member `yaml:"sets" toml:"sets" json:"sets"`
}

type member struct {
	Kind         string  `yaml:"kind" toml:"kind" json:"kind"`
	Placeholders *string `yaml:"placeholders,omitempty" toml:"placeholders,omitempty" json:"placeholders,omitempty"`
}

func TestAtomicWrite_Encodings(t *testing.T) {
	p := "Xx*"
	in := doc{Version: 1, Sets: map[string][]member{
		"card": {{Kind: "digit"}, {Kind: "masked_digit", Placeholders: &p}},
	}}

	decoders := map[Encoding]func([]byte, any) error{
		EncodingYAML: yaml.Unmarshal,
		EncodingTOML: toml.Unmarshal,
		EncodingJSON: json.Unmarshal,
	}

	for _, enc := range Encodings() {
		t.Run(string(enc), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sets."+string(enc))
			if err := AtomicWrite(path, enc, in); err != nil {
				t.Fatalf("AtomicWrite() error = %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasSuffix(string(data), "\n") {
				t.Error("encoded output should end with a newline")
			}

			var out doc
			if err := decoders[enc](data, &out); err != nil {
				t.Fatalf("decoding %s: %v\n%s", enc, err, data)
			}
			card := out.Sets["card"]
			if len(card) != 2 || card[0].Placeholders != nil || card[1].Placeholders == nil || *card[1].Placeholders != p {
				t.Errorf("decoded card = %+v", card)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    Encoding
		wantErr bool
	}{
		{"yaml", EncodingYAML, false},
		{"YML", EncodingYAML, false},
		{"toml", EncodingTOML, false},
		{"json", EncodingJSON, false},
		{"ini", "", true},
	}
	for _, tt := range tests {
		got, err := ParseEncoding(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseEncoding(%q) = %q, %v", tt.in, got, err)
		}
	}

	if e, ok := EncodingFromPath("out/sets.toml"); !ok || e != EncodingTOML {
		t.Errorf("EncodingFromPath(.toml) = %q, %v", e, ok)
	}
	if _, ok := EncodingFromPath("sets"); ok {
		t.Error("EncodingFromPath without extension should report false")
	}
}
